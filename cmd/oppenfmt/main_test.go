package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestRunFormatsEachLanguage(t *testing.T) {
	tests := map[string]struct {
		lang string
		in   string
		want string
	}{
		"json":  {"json", "[1,2,3]", "[1, 2, 3]"},
		"sexpr": {"sexpr", "(1 2 3)", "(1 2 3)"},
		"yaml":  {"yaml", "a: 1\n", "{ a: 1 }"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut strings.Builder
			args := []string{"oppenfmt", "-lang=" + tt.lang, "-width=40"}
			err := run(args, strings.NewReader(tt.in), &out, &errOut)
			require.NoErrorf(t, err, "run(%v)", args)
			assert.Equalsf(t, out.String(), tt.want, "run(%v)", args)
		})
	}
}

func TestRunUnknownLangReturnsError(t *testing.T) {
	var out, errOut strings.Builder
	err := run([]string{"oppenfmt", "-lang=toml", "-width=40"}, strings.NewReader("x"), &out, &errOut)
	require.NotNilf(t, err, "run with unknown -lang")
}

func TestRunCheckReportsUnformattedInput(t *testing.T) {
	var out, errOut strings.Builder
	args := []string{"oppenfmt", "-lang=json", "-width=40", "-check"}
	err := run(args, strings.NewReader("[1,2,3]"), &out, &errOut)
	require.NotNilf(t, err, "run -check on unformatted input")
	assert.Equalsf(t, out.String(), "", "run -check")
}

func TestRunCheckAcceptsAlreadyFormattedInput(t *testing.T) {
	var out, errOut strings.Builder
	args := []string{"oppenfmt", "-lang=json", "-width=40", "-check"}
	err := run(args, strings.NewReader("[1, 2, 3]"), &out, &errOut)
	require.NoErrorf(t, err, "run -check on formatted input")
}

func TestRunDiffShowsChanges(t *testing.T) {
	var out, errOut strings.Builder
	args := []string{"oppenfmt", "-lang=json", "-width=40", "-diff"}
	err := run(args, strings.NewReader("[1,2,3]"), &out, &errOut)
	require.NoErrorf(t, err, "run -diff")
	assert.Truef(t, out.String() != "", "run -diff should print a diff for changed input")
}

func TestRunDiffPrintsNothingForUnchangedInput(t *testing.T) {
	var out, errOut strings.Builder
	args := []string{"oppenfmt", "-lang=json", "-width=40", "-diff"}
	err := run(args, strings.NewReader("[1, 2, 3]"), &out, &errOut)
	require.NoErrorf(t, err, "run -diff")
	assert.Equalsf(t, out.String(), "", "run -diff on unchanged input")
}

func TestRunDirFormatsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoErrorf(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("[1,2,3]"), 0o644), "write a.json")
	require.NoErrorf(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("keep me"), 0o644), "write b.txt")

	var out, errOut strings.Builder
	args := []string{"oppenfmt", "-lang=json", "-width=40", "-dir=" + dir, "-pattern=**/*.json"}
	require.NoErrorf(t, run(args, strings.NewReader(""), &out, &errOut), "run(%v)", args)

	got, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoErrorf(t, err, "read a.json")
	assert.Equalsf(t, string(got), "[1, 2, 3]", "a.json formatted")

	untouched, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	require.NoErrorf(t, err, "read b.txt")
	assert.Equalsf(t, string(untouched), "keep me", "b.txt left untouched")
}

func TestRunVersionPrintsSomething(t *testing.T) {
	var out, errOut strings.Builder
	err := run([]string{"oppenfmt", "-version"}, strings.NewReader(""), &out, &errOut)
	require.NoErrorf(t, err, "run -version")
	assert.Truef(t, out.String() != "", "-version should print something")
}

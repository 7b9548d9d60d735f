// Command oppenfmt pretty-prints JSON, S-expression, and YAML input through the oppen engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/term"

	"github.com/oppen-go/oppen/internal/format"
	"github.com/oppen-go/oppen/internal/layout"
	"github.com/oppen-go/oppen/internal/version"
	"github.com/oppen-go/oppen/printer/json"
	"github.com/oppen-go/oppen/printer/sexpr"
	"github.com/oppen-go/oppen/printer/yaml"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

var printers = map[string]format.Printer{
	"json":  json.Format,
	"sexpr": sexpr.Format,
	"yaml":  yaml.Format,
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	flags.SetOutput(wErr)
	lang := flags.String("lang", "json", "input language to pretty-print: 'json', 'sexpr', or 'yaml'")
	width := flags.Int("width", 0, "maximum line width in columns; 0 autodetects the terminal width, falling back to 80")
	formatFlag := flags.String("format", "default", "render the formatted output as 'default', the document layout used to produce it as 'layout', or a runnable main.go reproducing that layout as 'go'")
	diff := flags.Bool("diff", false, "print a diff instead of the formatted output")
	check := flags.Bool("check", false, "exit with a non-zero status if input is not already formatted, without printing anything")
	dir := flags.String("dir", "", "format every file below this directory matching -pattern, in place, instead of reading from stdin")
	pattern := flags.String("pattern", "**/*", "doublestar glob, relative to -dir, selecting which files to format")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")
	showVersion := flags.Bool("version", false, "print version information and exit")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(w, version.Version())
		return nil
	}

	print, ok := printers[*lang]
	if !ok {
		return fmt.Errorf("unknown -lang %q, valid ones are 'json', 'sexpr', 'yaml'", *lang)
	}

	ft, err := layout.NewFormat(*formatFlag)
	if err != nil {
		return fmt.Errorf("failed to convert -format=%q: %v", *formatFlag, err)
	}

	lineWidth := *width
	if lineWidth <= 0 {
		lineWidth = terminalWidth(w)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *dir != "" {
		err = format.Dir(*dir, *pattern, lineWidth, ft, print)
	} else {
		err = runOne(*check, *diff, r, w, lineWidth, ft, print)
	}
	if err != nil {
		return err
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

// runOne formats the bytes read from r, either writing the result to w, printing a diff against
// the original, or (in -check mode) reporting whether it would change at all.
func runOne(check, showDiff bool, r io.Reader, w io.Writer, lineWidth int, ft layout.Format, print format.Printer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}

	var out strings.Builder
	if err := print(src, &out, lineWidth, ft); err != nil {
		return err
	}
	formatted := out.String()

	switch {
	case check:
		if string(src) != formatted {
			return fmt.Errorf("input is not formatted")
		}
		return nil
	case showDiff:
		if d := cmp.Diff(string(src), formatted); d != "" {
			fmt.Fprint(w, d)
		}
		return nil
	default:
		_, err := io.WriteString(w, formatted)
		return err
	}
}

// terminalWidth returns w's terminal column width, or 80 if w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 80
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80
	}
	return cols
}

// Package format drives a [Printer] over a single reader, a single file, or a whole directory
// tree, writing results back atomically and bounding directory-wide concurrency.
package format

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio"
	"golang.org/x/sync/errgroup"

	"github.com/oppen-go/oppen/internal/layout"
)

// Printer renders src, at the given line width and debug format, to w. Each printer/* package
// provides one, parsing its own input language and laying the result out through oppen.
type Printer func(src []byte, w io.Writer, width int, ft layout.Format) error

// Reader formats source read from r and writes the result to w.
func Reader(r io.Reader, w io.Writer, width int, ft layout.Format, print Printer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}
	return print(src, w, width, ft)
}

// File formats a single file in place. The replacement is written to a temporary file and
// renamed over the original, so a crash or a failing Printer never leaves a half-written
// file behind.
func File(path string, width int, ft layout.Format, print Printer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file: %v", err)
	}

	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("failed to create temp file for atomic rename: %v", err)
	}
	defer t.Cleanup()

	if err := print(src, t, width, ft); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %v", path, err)
	}
	return nil
}

// Dir formats every file below root whose path, relative to root, matches pattern (a
// doublestar glob, e.g. "**/*.json"). Files are formatted concurrently, bounded to
// runtime.GOMAXPROCS(0) in flight at a time; Dir returns the first error encountered but lets
// in-flight formatting finish before returning it.
func Dir(root, pattern string, width int, ft layout.Format, print Printer) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	if err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, fsErr error) error {
		if fsErr != nil {
			return fsErr
		}
		if d.IsDir() {
			return nil
		}
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %v", pattern, err)
		}
		if !ok {
			return nil
		}

		file := filepath.Join(root, path)
		g.Go(func() error {
			return File(file, width, ft, print)
		})
		return nil
	}); err != nil {
		_ = g.Wait()
		return err
	}
	return g.Wait()
}

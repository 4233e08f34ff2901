// Package qmlformat wraps the external qmlformat binary: locating it,
// assembling its argument list, and classifying its exit status.
package qmlformat

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
)

// DefaultTabSize matches qmlformat's own default; the flag is only
// passed when the caller asks for something else.
const DefaultTabSize = 4

// Options controls how a single file is formatted.
type Options struct {
	// UseSpaces indents with spaces instead of tabs.
	UseSpaces bool

	// CheckOnly verifies formatting without modifying the file. The
	// tool exits 1 when the file is not in canonical form.
	CheckOnly bool

	// InPlace rewrites the file. Ignored when CheckOnly is set.
	InPlace bool

	// TabSize is the indentation width.
	TabSize int
}

// DefaultOptions returns the in-place fix-mode defaults.
func DefaultOptions() Options {
	return Options{InPlace: true, TabSize: DefaultTabSize}
}

// Args assembles the qmlformat argument list for one file.
func (o Options) Args(path string) []string {
	var args []string
	if o.UseSpaces {
		args = append(args, "--use-spaces")
	}
	if o.CheckOnly {
		args = append(args, "--check")
	} else if o.InPlace {
		args = append(args, "--inplace")
	}
	if o.TabSize != DefaultTabSize {
		args = append(args, "--tab-size", strconv.Itoa(o.TabSize))
	}
	return append(args, path)
}

// Format runs the tool against a single file and classifies the outcome.
// The path is checked before spawning anything so a missing file never
// reaches the tool.
func (t Tool) Format(ctx context.Context, path string, opts Options) error {
	if _, err := os.Stat(path); err != nil {
		return &InvalidInputError{Path: path, Err: err}
	}

	cmd := exec.CommandContext(ctx, t.Path, opts.Args(path)...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		return &FormatError{
			Path:            path,
			ExitCode:        code,
			Output:          string(out),
			NeedsFormatting: opts.CheckOnly && code == 1,
		}
	}

	// Could not spawn at all. The executable was located earlier, so
	// surface this as the tool having gone missing.
	return &ToolNotFoundError{Candidates: []string{t.Path}}
}

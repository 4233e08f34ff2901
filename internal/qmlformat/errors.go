package qmlformat

import (
	"fmt"
	"strings"
)

// ToolNotFoundError indicates that no qmlformat executable could be located.
type ToolNotFoundError struct {
	// Candidates lists the executable names that were probed on PATH,
	// or the single explicit path that was checked.
	Candidates []string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("qmlformat not found (tried: %s)", strings.Join(e.Candidates, ", "))
}

// InvalidInputError indicates that an input path does not exist or cannot
// be read. The formatter is never invoked for such a path.
type InvalidInputError struct {
	Path string
	Err  error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %v", e.Path, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// FormatError indicates that the formatter ran but exited non-zero.
type FormatError struct {
	Path     string
	ExitCode int
	Output   string

	// NeedsFormatting is set when the tool ran in check mode and exit
	// code 1 means "file is not in canonical form" rather than an
	// execution failure.
	NeedsFormatting bool
}

func (e *FormatError) Error() string {
	if e.NeedsFormatting {
		return fmt.Sprintf("%s: needs formatting", e.Path)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: qmlformat exited %d: %s", e.Path, e.ExitCode, out)
	}
	return fmt.Sprintf("%s: qmlformat exited %d", e.Path, e.ExitCode)
}

package runner

import (
	"context"
	"errors"

	"qmlfmthook/internal/qmlformat"
)

// FileFormatter formats a single file. The production implementation
// wraps a located qmlformat binary with fixed options.
type FileFormatter interface {
	Format(ctx context.Context, path string) error
}

// FormatterFunc adapts a function to the FileFormatter interface.
type FormatterFunc func(ctx context.Context, path string) error

func (f FormatterFunc) Format(ctx context.Context, path string) error { return f(ctx, path) }

// Exit codes recorded per file. These line up with the process exit
// codes the CLI surfaces for the corresponding failure class.
const (
	ExitFormattingFailed = 1
	ExitToolNotFound     = 2
	ExitInvalidInput     = 3
	ExitInternal         = 4
)

// classify turns a formatter error into a per-file result.
func classify(path string, err error) FileResult {
	if err == nil {
		return FileResult{Path: path, Status: StatusPass}
	}

	var (
		notFound *qmlformat.ToolNotFoundError
		invalid  *qmlformat.InvalidInputError
		ferr     *qmlformat.FormatError
	)
	switch {
	case errors.As(err, &notFound):
		return FileResult{Path: path, Status: StatusFail, ExitCode: ExitToolNotFound, Note: err.Error()}
	case errors.As(err, &invalid):
		return FileResult{Path: path, Status: StatusFail, ExitCode: ExitInvalidInput, Note: err.Error()}
	case errors.As(err, &ferr):
		return FileResult{Path: path, Status: StatusFail, ExitCode: ExitFormattingFailed, Note: err.Error()}
	default:
		return FileResult{Path: path, Status: StatusFail, ExitCode: ExitInternal, Note: err.Error()}
	}
}

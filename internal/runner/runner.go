// Package runner executes the formatter across a batch of files and
// aggregates the per-file outcomes into a run summary.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

// Runner fans a batch of file paths out to a FileFormatter and records
// the results.
type Runner struct {
	formatter FileFormatter
	store     *StateStore
	workers   int
	out       io.Writer
}

// NewRunner creates a runner. workers <= 0 means one worker per CPU;
// workers == 1 gives strictly sequential invocation.
func NewRunner(formatter FileFormatter, store *StateStore, workers int, out io.Writer) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		formatter: formatter,
		store:     store,
		workers:   workers,
		out:       out,
	}
}

// RunError reports the files that failed in a run. Its exit code is the
// first failure's code, so a batch with one unreadable path among
// formatting failures still surfaces deterministically.
type RunError struct {
	Failed []FileResult
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%d file(s) failed", len(e.Failed))
}

func (e *RunError) ExitCode() int {
	if len(e.Failed) == 0 {
		return 0
	}
	return e.Failed[0].ExitCode
}

// Run formats every path. A failing file never stops the batch: each
// path is independent, and all failures are collected. Results are
// reported in input order regardless of which worker finished first.
func (r *Runner) Run(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	results := make([]FileResult, len(paths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := paths[i]
				slog.Debug("formatting", "path", path)
				results[i] = classify(path, r.formatter.Format(ctx, path))
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var failed []FileResult
	for _, res := range results {
		if err := r.store.WriteFileResult(res); err != nil {
			return fmt.Errorf("writing result for %s: %w", res.Path, err)
		}

		switch res.Status {
		case StatusFail:
			failed = append(failed, res)
			fmt.Fprintf(r.out, "FAIL: %s (exit %d)\n", res.Path, res.ExitCode)
			if res.Note != "" {
				fmt.Fprintln(r.out, res.Note)
			}
		case StatusSkip:
			fmt.Fprintf(r.out, "SKIP: %s\n", res.Path)
		default:
			fmt.Fprintf(r.out, "PASS: %s\n", res.Path)
		}
	}

	summary := Summary{Status: "pass", Files: paths}
	for _, f := range failed {
		summary.Failed = append(summary.Failed, f.Path)
	}
	if len(failed) > 0 {
		summary.Status = "fail"
	}
	if err := r.store.WriteSummary(summary); err != nil {
		return fmt.Errorf("writing run summary: %w", err)
	}

	if len(failed) > 0 {
		return &RunError{Failed: failed}
	}
	return nil
}

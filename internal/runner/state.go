package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StateStore persists run results under a base directory.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory
// (e.g. .qmlfmt-hook/run).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) summaryPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// fileResultName flattens a file path into a single filename.
var fileResultName = strings.NewReplacer("/", "__", "\\", "__", ":", "_")

func (s *StateStore) fileResultPath(path string) string {
	return filepath.Join(s.baseDir, "files", fileResultName.Replace(path)+".json")
}

// ReadSummary loads the last run summary. A missing file is clean state
// and returns nil, nil.
func (s *StateStore) ReadSummary() (*Summary, error) {
	f, err := os.Open(s.summaryPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var sum Summary
	if err := json.NewDecoder(f).Decode(&sum); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &sum, nil
}

// ReadFileResult loads the persisted result for one file, or nil, nil if
// the file was never run.
func (s *StateStore) ReadFileResult(path string) (*FileResult, error) {
	f, err := os.Open(s.fileResultPath(path))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var res FileResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteSummary saves the run summary.
func (s *StateStore) WriteSummary(sum Summary) (err error) {
	return s.writeJSON(s.summaryPath(), sum)
}

// WriteFileResult saves one file's result.
func (s *StateStore) WriteFileResult(res FileResult) error {
	return s.writeJSON(s.fileResultPath(res.Path), res)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

// FailedFiles returns the files that failed in the last run.
func (s *StateStore) FailedFiles() ([]string, error) {
	sum, err := s.ReadSummary()
	if err != nil {
		return nil, err
	}
	if sum == nil {
		return nil, nil
	}
	return sum.Failed, nil
}

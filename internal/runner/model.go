package runner

// Status represents the outcome for a single file.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// FileResult is the outcome of formatting one file.
// Matches the <state-dir>/files/<name>.json schema.
type FileResult struct {
	Path     string `json:"path"`
	Status   Status `json:"status"`
	ExitCode int    `json:"exit_code"`
	Note     string `json:"note,omitempty"`
}

// Summary is the outcome of a whole run.
// Matches the <state-dir>/last-run.json schema.
type Summary struct {
	Status string   `json:"status"` // "pass" or "fail"
	Files  []string `json:"files"`  // Files in input order
	Failed []string `json:"failed"` // Files that failed
}

package qmlformat

import (
	"os"
	"os/exec"
)

// candidateNames are the executable names probed on PATH, in order of
// preference. PySide ships the formatter under a prefixed name; Qt
// installs it plain. exec.LookPath handles the .exe suffix on Windows.
var candidateNames = []string{"pyside6-qmlformat", "qmlformat"}

// Tool is a located qmlformat executable.
type Tool struct {
	Path string
}

// Locate resolves the formatter executable. If explicitPath is non-empty
// it is verified and used as-is; otherwise the well-known names are
// probed on PATH in order.
func Locate(explicitPath string) (Tool, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return Tool{}, &ToolNotFoundError{Candidates: []string{explicitPath}}
		}
		return Tool{Path: explicitPath}, nil
	}

	for _, name := range candidateNames {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return Tool{Path: path}, nil
	}

	return Tool{}, &ToolNotFoundError{Candidates: candidateNames}
}

package qmlformat

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsArgs(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{
			name:     "defaults are in-place",
			opts:     DefaultOptions(),
			expected: []string{"--inplace", "Main.qml"},
		},
		{
			name:     "check wins over inplace",
			opts:     Options{CheckOnly: true, InPlace: true, TabSize: 4},
			expected: []string{"--check", "Main.qml"},
		},
		{
			name:     "use spaces",
			opts:     Options{UseSpaces: true, InPlace: true, TabSize: 4},
			expected: []string{"--use-spaces", "--inplace", "Main.qml"},
		},
		{
			name:     "non-default tab size",
			opts:     Options{InPlace: true, TabSize: 2},
			expected: []string{"--inplace", "--tab-size", "2", "Main.qml"},
		},
		{
			name:     "default tab size omitted",
			opts:     Options{InPlace: true, TabSize: 4},
			expected: []string{"--inplace", "Main.qml"},
		},
		{
			name:     "neither check nor inplace",
			opts:     Options{TabSize: 4},
			expected: []string{"Main.qml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.Args("Main.qml"))
		})
	}
}

func TestFormatMissingFile(t *testing.T) {
	tool := fakeTool(t, 0)

	err := tool.Format(context.Background(), filepath.Join(t.TempDir(), "missing.qml"), DefaultOptions())
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Path, "missing.qml")
}

func TestFormatSuccess(t *testing.T) {
	tool := fakeTool(t, 0)
	path := writeQML(t, "Item {}\n")

	err := tool.Format(context.Background(), path, DefaultOptions())
	require.NoError(t, err)
}

func TestFormatToolFailure(t *testing.T) {
	tool := fakeTool(t, 2)
	path := writeQML(t, "Item {}\n")

	err := tool.Format(context.Background(), path, DefaultOptions())
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 2, ferr.ExitCode)
	assert.False(t, ferr.NeedsFormatting)
}

func TestFormatCheckModeNeedsFormatting(t *testing.T) {
	tool := fakeTool(t, 1)
	path := writeQML(t, "Item{}\n")

	opts := DefaultOptions()
	opts.CheckOnly = true
	err := tool.Format(context.Background(), path, opts)
	require.Error(t, err)

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.True(t, ferr.NeedsFormatting)
	assert.Equal(t, 1, ferr.ExitCode)
}

func TestFormatToolVanished(t *testing.T) {
	tool := Tool{Path: filepath.Join(t.TempDir(), "no-such-binary")}
	path := writeQML(t, "Item {}\n")

	err := tool.Format(context.Background(), path, DefaultOptions())
	require.Error(t, err)

	var notFound *ToolNotFoundError
	require.ErrorAs(t, err, &notFound)
}

// fakeTool installs a script that exits with the given code and returns
// it as a Tool.
func fakeTool(t *testing.T, exitCode int) Tool {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake formatter scripts require a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "qmlformat")
	script := "#!/bin/sh\nexit " + strconv.Itoa(exitCode) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return Tool{Path: path}
}

func writeQML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Main.qml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

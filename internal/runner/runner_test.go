package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qmlfmthook/internal/qmlformat"
)

// MockFormatter fails the paths listed in errs and records every call.
type MockFormatter struct {
	mu     sync.Mutex
	errs   map[string]error
	called []string
}

func (m *MockFormatter) Format(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.called = append(m.called, path)
	return m.errs[path]
}

func TestRunnerAllPass(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)
	m := &MockFormatter{}
	var out bytes.Buffer

	r := NewRunner(m, store, 1, &out)
	err := r.Run(context.Background(), []string{"a.qml", "b.qml"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.qml", "b.qml"}, m.called)
	assert.Contains(t, out.String(), "PASS: a.qml")
	assert.Contains(t, out.String(), "PASS: b.qml")

	sum, err := store.ReadSummary()
	require.NoError(t, err)
	assert.Equal(t, "pass", sum.Status)
	assert.Equal(t, []string{"a.qml", "b.qml"}, sum.Files)
	assert.Empty(t, sum.Failed)
}

func TestRunnerFailureDoesNotStopBatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)
	m := &MockFormatter{errs: map[string]error{
		"a.qml": &qmlformat.FormatError{Path: "a.qml", ExitCode: 1},
	}}
	var out bytes.Buffer

	r := NewRunner(m, store, 1, &out)
	err := r.Run(context.Background(), []string{"a.qml", "b.qml"})
	require.Error(t, err)

	// b.qml still ran despite a.qml failing.
	assert.ElementsMatch(t, []string{"a.qml", "b.qml"}, m.called)

	sum, err := store.ReadSummary()
	require.NoError(t, err)
	assert.Equal(t, "fail", sum.Status)
	assert.Equal(t, []string{"a.qml"}, sum.Failed)
}

func TestRunnerExitCodeFromFirstFailure(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)
	m := &MockFormatter{errs: map[string]error{
		"b.qml": &qmlformat.InvalidInputError{Path: "b.qml", Err: os.ErrNotExist},
		"c.qml": &qmlformat.FormatError{Path: "c.qml", ExitCode: 1},
	}}
	var out bytes.Buffer

	r := NewRunner(m, store, 1, &out)
	err := r.Run(context.Background(), []string{"a.qml", "b.qml", "c.qml"})
	require.Error(t, err)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	require.Len(t, runErr.Failed, 2)
	// Input order decides which failure's code wins.
	assert.Equal(t, "b.qml", runErr.Failed[0].Path)
	assert.Equal(t, ExitInvalidInput, runErr.ExitCode())
}

func TestRunnerParallelKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir)
	m := &MockFormatter{errs: map[string]error{
		"d.qml": &qmlformat.FormatError{Path: "d.qml", ExitCode: 2},
	}}
	var out bytes.Buffer

	paths := []string{"a.qml", "b.qml", "c.qml", "d.qml", "e.qml"}
	r := NewRunner(m, store, 4, &out)
	err := r.Run(context.Background(), paths)
	require.Error(t, err)

	assert.ElementsMatch(t, paths, m.called)

	sum, err := store.ReadSummary()
	require.NoError(t, err)
	assert.Equal(t, paths, sum.Files)
	assert.Equal(t, []string{"d.qml"}, sum.Failed)
}

func TestRunnerEmptyBatch(t *testing.T) {
	store := NewStateStore(t.TempDir())
	m := &MockFormatter{}
	var out bytes.Buffer

	r := NewRunner(m, store, 0, &out)
	require.NoError(t, r.Run(context.Background(), nil))
	assert.Empty(t, m.called)

	// No state is written for an empty batch.
	sum, err := store.ReadSummary()
	require.NoError(t, err)
	assert.Nil(t, sum)
}

func TestClassifyUnknownError(t *testing.T) {
	res := classify("x.qml", errors.New("boom"))
	assert.Equal(t, StatusFail, res.Status)
	assert.Equal(t, ExitInternal, res.ExitCode)
}

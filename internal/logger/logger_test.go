package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	l.Info("dropped", "key", "value")
	l.Sync()
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")

	l, err := New("prod", path)
	require.NoError(t, err)
	l.With("session", "abc").Info("answers evaluated", "correct", 2, "total", 3)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answers evaluated")
	assert.Contains(t, string(data), `"session":"abc"`)
	assert.Contains(t, string(data), `"correct":2`)
}

func TestNew_DevModeLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")

	l, err := New("dev", path)
	require.NoError(t, err)
	l.Debug("answer set", "question", 1)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answer set")
}

package xrotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLumberjack_EmptyFilename(t *testing.T) {
	r, err := NewLumberjack("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrEmptyFilename)
}

func TestNewLumberjack_InvalidOptions(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "run.log")

	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"size_zero", WithMaxSize(0), ErrInvalidMaxSize},
		{"size_too_large", WithMaxSize(maxSizeMB + 1), ErrInvalidMaxSize},
		{"backups_negative", WithMaxBackups(-1), ErrInvalidMaxBackups},
		{"age_too_large", WithMaxAge(maxAgeDays + 1), ErrInvalidMaxAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewLumberjack(filename, tt.opt)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLumberjack_WriteCreatesDir(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "nested", "dir", "run.log")

	r, err := NewLumberjack(filename, WithMaxSize(1), WithCompress(false), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	n, err := r.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestLumberjack_Rotate(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "run.log")

	r, err := NewLumberjack(filename)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = r.Write([]byte("before\n"))
	require.NoError(t, err)
	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("after\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "rotation should leave one backup next to the active file")

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(data))
}

func TestLumberjack_Closed(t *testing.T) {
	r, err := NewLumberjack(filepath.Join(t.TempDir(), "run.log"))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)

	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}

package storage

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestUploadStore_Save(t *testing.T) {
	req := require.New(t)
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewUploadStore(dir, slog.New(slog.DiscardHandler))
	req.NoError(err)

	// When
	n, err := store.Save("abc.png", strings.NewReader("png-bytes"))

	// Then
	req.NoError(err)
	req.Equal(int64(9), n)
	data, err := os.ReadFile(filepath.Join(dir, "abc.png"))
	req.NoError(err)
	req.Equal("png-bytes", string(data))

	// And deleting twice is fine
	req.NoError(store.Delete("abc.png"))
	req.NoError(store.Delete("abc.png"))
}

func TestUploadStore_FailedWriteLeavesNothing(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	store, err := NewUploadStore(dir, slog.New(slog.DiscardHandler))
	req.NoError(err)

	_, err = store.Save("broken.jpg", failingReader{})

	req.Error(err)
	entries, err := os.ReadDir(dir)
	req.NoError(err)
	req.Empty(entries)
}

func TestUploadStore_RejectsPaths(t *testing.T) {
	req := require.New(t)
	store, err := NewUploadStore(t.TempDir(), slog.New(slog.DiscardHandler))
	req.NoError(err)

	for _, name := range []string{"", "..", "../x.png", `a\b.png`} {
		_, err = store.Save(name, strings.NewReader("x"))
		req.Error(err, name)
	}
}

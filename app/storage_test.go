package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStorageWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage()
	ctx := context.Background()

	path := filepath.Join(dir, "nested", "pattern.embproj")
	require.NoError(t, storage.Write(ctx, path, []byte("hello")))

	got, err := storage.Read(ctx, path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
}

func TestFileStorageWriteOverwritesAtomically(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage()
	ctx := context.Background()
	path := filepath.Join(dir, "pattern.embproj")

	require.NoError(t, storage.Write(ctx, path, []byte("first")))
	require.NoError(t, storage.Write(ctx, path, []byte("second")))

	got, err := storage.Read(ctx, path)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no leftover temp file after a successful write")
}

func TestFileStorageReadMissingFile(t *testing.T) {
	storage := NewFileStorage()
	_, err := storage.Read(context.Background(), filepath.Join(t.TempDir(), "missing.embproj"))
	require.Error(t, err)
}

package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// Storage is everything the command surface needs from a filesystem: read
// a whole file, write one atomically, and locate the directory new
// patterns are created in. Swapping this out (a fake for tests, an
// in-memory store) is the only seam the original's filesystem access
// needed; no remote-storage implementation exists, matching spec.md's
// local-only scope. Read takes a context because it is routed through
// grailbio/base/file, whose backends (this one is local-only, but the
// type is the same one GRAIL points at S3) are all context-aware.
type Storage interface {
	// Read returns the complete contents of the file at path.
	Read(ctx context.Context, path string) ([]byte, error)
	// Write atomically replaces the file at path with data, creating it
	// (and any missing parent directory) if absent.
	Write(ctx context.Context, path string, data []byte) error
	// DocumentDir returns the directory new patterns are created in,
	// creating it on first use. No sample patterns are copied into it.
	DocumentDir() (string, error)
}

// appDirName names the product folder created under the OS documents
// directory, matching the original's app identifier.
const appDirName = "EmbroideryStudio"

// FileStorage is the Storage implementation backed directly by the host
// filesystem. Writes go through a temp-file-plus-rename sequence so a
// crash or concurrent reader never observes a partially written file; the
// rename step is platform-specific (see storage_unix.go/storage_other.go).
type FileStorage struct{}

// NewFileStorage returns the local-filesystem Storage implementation.
func NewFileStorage() FileStorage { return FileStorage{} }

func (FileStorage) Read(ctx context.Context, path string) ([]byte, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "app: read", path)
	}
	defer f.Close(ctx) // nolint: errcheck

	data, err := io.ReadAll(f.Reader(ctx))
	if err != nil {
		return nil, errors.E(err, "app: read", path)
	}
	return data, nil
}

// Write does not route the temp file through file.Create: that call has no
// analogue of os.CreateTemp's O_EXCL unique-name guarantee, which the
// crash-safety of this sequence depends on. Once the temp file holds the
// full contents, chmodLike/atomicRename take over for the swap itself.
func (FileStorage) Write(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.E(err, "app: create directory", dir)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.E(err, "app: create temp file in", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds.

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.E(err, "app: write", path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.E(err, "app: sync", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.E(err, "app: close temp file for", path)
	}
	if err := chmodLike(tmpPath, path); err != nil {
		return err
	}
	if err := atomicRename(tmpPath, path); err != nil {
		return errors.E(err, "app: rename into", path)
	}
	return nil
}

func (FileStorage) DocumentDir() (string, error) {
	base, err := os.UserHomeDir()
	if err != nil {
		return "", errors.E(err, "app: locate home directory")
	}
	dir := filepath.Join(base, "Documents", appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.E(err, "app: create document directory", dir)
	}
	return dir, nil
}

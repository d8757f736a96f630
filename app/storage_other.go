// +build windows

package app

import "os"

// chmodLike is a no-op on Windows: permission bits there do not carry the
// same meaning, and os.CreateTemp's default mode is already appropriate.
func chmodLike(path, likePath string) error { return nil }

// atomicRename falls back to os.Rename, which Windows itself implements
// atomically for same-volume renames.
func atomicRename(src, dst string) error {
	return os.Rename(src, dst)
}

// +build !windows

package app

import (
	"os"

	"github.com/grailbio/base/errors"
	"golang.org/x/sys/unix"
)

// chmodLike copies the permission bits of an existing file at likePath onto
// the file at path, or leaves path at its just-created mode if likePath
// does not yet exist (the common case: a brand-new save).
func chmodLike(path, likePath string) error {
	fi, err := os.Stat(likePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.E(err, "app: stat", likePath)
	}
	if err := unix.Chmod(path, uint32(fi.Mode().Perm())); err != nil {
		return errors.E(err, "app: chmod", path)
	}
	return nil
}

// atomicRename replaces dst with src in a single filesystem operation:
// unix.Rename is POSIX rename(2), which never leaves either path missing
// even if the process dies mid-call.
func atomicRename(src, dst string) error {
	if err := unix.Rename(src, dst); err != nil {
		return errors.E(err, "app: rename", src, dst)
	}
	return nil
}

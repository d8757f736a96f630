// Package app implements the command surface a dispatcher (IPC layer, CLI,
// test harness) drives: load/create/save/close a pattern, mutate it through
// the actions package, and undo/redo. It owns the one registry.Registry for
// the process and the Storage a dispatcher's commands read and write
// through, matching the way the original's Tauri command layer sat between
// a managed AppState and the OS filesystem.
package app

import "github.com/pkg/errors"

// Sentinel errors matching the command surface's error taxonomy. Wrapped
// with errors.Wrap/Wrapf for context as they propagate; callers that need
// to branch on kind should use errors.Is against these.
//
// This file deliberately stays on github.com/pkg/errors rather than the
// teacher's own, more heavily used github.com/grailbio/base/errors: the
// command surface's contract is sentinel identity checked with errors.Is
// (see the service_test.go require.ErrorIs assertions), and
// grailbio/base/errors predates Go's Unwrap-based errors.Is interop — its
// own call sites (e.g. encoding/pam/fieldio/reader.go) branch by type-
// asserting to *errors.Error and comparing a coarse Kind field instead,
// which would collapse UnsupportedPatternType/MalformedInput/NothingToUndo/
// NothingToRedo into indistinguishable cases. grailbio/base/errors is
// wired elsewhere in this package (storage.go, storage_unix.go) for the
// I/O failures nothing branches on.
var (
	// ErrUnsupportedPatternType is returned when a file path's extension
	// does not match any known codec.
	ErrUnsupportedPatternType = errors.New("app: unsupported pattern type")
	// ErrMalformedInput is returned when a codec rejects the bytes it was
	// given; the underlying codec error is wrapped onto this.
	ErrMalformedInput = errors.New("app: malformed input")
	// ErrNothingToUndo is returned by Undo when the history has no action
	// to revoke.
	ErrNothingToUndo = errors.New("app: nothing to undo")
	// ErrNothingToRedo is returned by Redo when the history has no action
	// to perform again.
	ErrNothingToRedo = errors.New("app: nothing to redo")
)

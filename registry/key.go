package registry

import farm "github.com/dgryski/go-farm"

// PatternKey identifies an open pattern project, derived from the
// filesystem path it was loaded from (or, for a pattern that has never been
// saved, a caller-assigned placeholder such as "Untitled-1").
type PatternKey string

// Fingerprint returns a stable 64-bit hash of the key, useful for log
// correlation without printing a full (possibly sensitive) file path.
func (k PatternKey) Fingerprint() uint64 {
	return farm.Hash64([]byte(k))
}

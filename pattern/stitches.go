package pattern

import (
	"bytes"
	"encoding/gob"

	"github.com/google/btree"
)

// ordered is implemented by every stitch variant kept in a Stitches
// collection: a three-way Cmp that defines geometric identity (and
// deliberately ignores fields like Palindex that should not affect slot
// occupancy).
type ordered[T any] interface {
	Cmp(other T) int
}

// Stitches is an ordered set of stitches of a single variant, keyed by their
// Cmp order. Inserting a stitch that already occupies a slot replaces the
// prior occupant and returns it, mirroring Rust's BTreeSet::replace; this is
// the mechanism the conflict-resolution algebra in Pattern.AddStitch builds
// on.
type Stitches[T ordered[T]] struct {
	inner *btree.BTreeG[T]
}

// NewStitches constructs an empty collection.
func NewStitches[T ordered[T]]() *Stitches[T] {
	less := func(a, b T) bool { return a.Cmp(b) < 0 }
	return &Stitches[T]{inner: btree.NewG(32, less)}
}

// Len reports the number of stitches currently stored.
func (s *Stitches[T]) Len() int {
	return s.inner.Len()
}

// Insert places stitch into the collection, replacing and returning any
// stitch that already occupied the same geometric slot.
func (s *Stitches[T]) Insert(stitch T) (prev T, replaced bool) {
	return s.inner.ReplaceOrInsert(stitch)
}

// Remove deletes the stitch occupying the same slot as stitch, if any,
// reporting whether one was found.
func (s *Stitches[T]) Remove(stitch T) (removed T, ok bool) {
	return s.inner.Delete(stitch)
}

// Get returns the stitch occupying the same slot as stitch, if any.
func (s *Stitches[T]) Get(stitch T) (found T, ok bool) {
	return s.inner.Get(stitch)
}

// Each calls fn for every stitch in ascending order, stopping early if fn
// returns false.
func (s *Stitches[T]) Each(fn func(T) bool) {
	s.inner.Ascend(func(item T) bool { return fn(item) })
}

// All collects every stitch into a slice in ascending order.
func (s *Stitches[T]) All() []T {
	out := make([]T, 0, s.inner.Len())
	s.Each(func(t T) bool { out = append(out, t); return true })
	return out
}

// GobEncode flattens the collection to its ascending-order slice form: the
// btree itself holds no exported state gob could walk, so Stitches encodes
// as whatever All returns and rebuilds the tree on decode.
func (s *Stitches[T]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.All()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode rebuilds the collection from the slice GobEncode produced.
func (s *Stitches[T]) GobDecode(data []byte) error {
	var items []T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
		return err
	}
	*s = *NewStitches[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return nil
}

// Package pattern implements the in-memory cross-stitch pattern model: the
// stitch variants, the geometric conflict-resolution algebra between them,
// and the Pattern aggregate that owns a project's fabric, palette and
// stitch collections.
package pattern

import "math"

// Coord is a fractional grid coordinate. Whole numbers address a cell's
// top-left corner; halves address quarter-cell boundaries used by part
// stitches. Coord is never NaN; callers that compute one from external input
// must validate that before constructing a value here.
type Coord float64

// Fract returns the fractional part of c, matching Rust's f32::fract (i.e.
// it keeps the sign of c).
func (c Coord) Fract() float64 {
	f := float64(c)
	return f - math.Trunc(f)
}

// Trunc returns c with its fractional part removed.
func (c Coord) Trunc() Coord {
	return Coord(math.Trunc(float64(c)))
}

// Cmp orders two coordinates, matching the total order NotNan<f32> provides
// in the original implementation.
func (c Coord) Cmp(other Coord) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

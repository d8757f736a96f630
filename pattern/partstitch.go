package pattern

// PartStitchDirection records which diagonal a half or quarter stitch runs
// along, derived from which quadrant of the cell it occupies.
type PartStitchDirection uint8

const (
	PartStitchDirectionForward PartStitchDirection = iota + 1
	PartStitchDirectionBackward
)

// PartStitchKind distinguishes a half-cell stitch from a quarter-cell one.
type PartStitchKind uint8

const (
	PartStitchKindHalf PartStitchKind = iota
	PartStitchKindQuarter
)

// PartStitch is a half or quarter stitch anchored at (X, Y), running along
// Direction.
type PartStitch struct {
	X, Y      Coord
	Palindex  uint8
	Direction PartStitchDirection
	Kind      PartStitchKind
}

// Cmp establishes the (y, x, kind, direction) total order the Stitches
// container uses for geometric identity.
func (p PartStitch) Cmp(other PartStitch) int {
	if c := p.Y.Cmp(other.Y); c != 0 {
		return c
	}
	if c := p.X.Cmp(other.X); c != 0 {
		return c
	}
	if p.Kind != other.Kind {
		if p.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if p.Direction != other.Direction {
		if p.Direction < other.Direction {
			return -1
		}
		return 1
	}
	return 0
}

// IsOnTopLeft reports whether the stitch's anchor sits in the top-left
// quarter of its cell.
func (p PartStitch) IsOnTopLeft() bool {
	return p.X.Fract() < 0.5 && p.Y.Fract() < 0.5
}

// IsOnTopRight reports whether the stitch's anchor sits in the top-right
// quarter of its cell.
func (p PartStitch) IsOnTopRight() bool {
	return p.X.Fract() >= 0.5 && p.Y.Fract() < 0.5
}

// IsOnBottomRight reports whether the stitch's anchor sits in the
// bottom-right quarter of its cell.
func (p PartStitch) IsOnBottomRight() bool {
	return p.X.Fract() >= 0.5 && p.Y.Fract() >= 0.5
}

// IsOnBottomLeft reports whether the stitch's anchor sits in the
// bottom-left quarter of its cell.
func (p PartStitch) IsOnBottomLeft() bool {
	return p.X.Fract() < 0.5 && p.Y.Fract() >= 0.5
}

// PartStitchFromFull converts a full/petite stitch into the half/quarter
// stitch occupying the same footprint, deriving its direction from the
// quadrant the coordinates fall in.
func PartStitchFromFull(f FullStitch) PartStitch {
	return PartStitch{
		X:         f.X,
		Y:         f.Y,
		Palindex:  f.Palindex,
		Direction: DirectionFromCoords(f.X, f.Y),
		Kind:      PartStitchKindFromFull(f.Kind),
	}
}

// PartStitchKindFromFull maps a full-stitch kind onto its part-stitch
// equivalent footprint.
func PartStitchKindFromFull(kind FullStitchKind) PartStitchKind {
	if kind == FullStitchKindFull {
		return PartStitchKindHalf
	}
	return PartStitchKindQuarter
}

// DirectionFromCoords derives a part stitch's diagonal from the quadrant its
// anchor falls in: stitches in the top-left or bottom-right quadrant run
// Backward, everything else runs Forward.
func DirectionFromCoords(x, y Coord) PartStitchDirection {
	xLow, yLow := x.Fract() < 0.5, y.Fract() < 0.5
	if (xLow && yLow) || (!xLow && !yLow) {
		return PartStitchDirectionBackward
	}
	return PartStitchDirectionForward
}

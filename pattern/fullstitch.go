package pattern

// FullStitchKind distinguishes a full stitch from the "petite" half-size
// variant that shares the same collection.
type FullStitchKind uint8

const (
	FullStitchKindFull FullStitchKind = iota
	FullStitchKindPetite
)

// FullStitch occupies an entire cell (Full) or a quarter of one (Petite).
type FullStitch struct {
	X, Y     Coord
	Palindex uint8
	Kind     FullStitchKind
}

// Cmp establishes the (y, x, kind) total order the Stitches container relies
// on for geometric identity; Palindex is deliberately excluded so that
// re-inserting a stitch with a different palette color replaces the
// existing occupant instead of coexisting with it.
func (f FullStitch) Cmp(other FullStitch) int {
	if c := f.Y.Cmp(other.Y); c != 0 {
		return c
	}
	if c := f.X.Cmp(other.X); c != 0 {
		return c
	}
	if f.Kind != other.Kind {
		if f.Kind < other.Kind {
			return -1
		}
		return 1
	}
	return 0
}

// FullStitchFromPart converts a half/quarter part stitch into the full/petite
// stitch that occupies the same footprint, carrying the palette index over.
func FullStitchFromPart(p PartStitch) FullStitch {
	return FullStitch{X: p.X, Y: p.Y, Palindex: p.Palindex, Kind: FullStitchKindFromPart(p.Kind)}
}

// FullStitchKindFromPart maps a part-stitch kind onto its full-stitch
// equivalent footprint.
func FullStitchKindFromPart(kind PartStitchKind) FullStitchKind {
	if kind == PartStitchKindHalf {
		return FullStitchKindFull
	}
	return FullStitchKindPetite
}

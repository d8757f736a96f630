package pattern

// LineKind distinguishes a backstitch from a straight stitch.
type LineKind uint8

const (
	LineKindBack LineKind = iota
	LineKindStraight
)

// String renders the OXS wire representation of a line kind.
func (k LineKind) String() string {
	if k == LineKindStraight {
		return "straightstitch"
	}
	return "backstitch"
}

// ParseLineKind parses the OXS wire "objecttype" value for a line. Unknown
// values fall back to Back rather than erroring, preserving behavior some
// OXS producers in the wild rely on; callers that care should compare the
// parsed kind's String() against the input to detect the fallback.
func ParseLineKind(s string) LineKind {
	if s == "straightstitch" {
		return LineKindStraight
	}
	return LineKindBack
}

// Line is a backstitch or straight stitch spanning two fractional points.
type Line struct {
	X0, X1   Coord
	Y0, Y1   Coord
	Palindex uint8
	Kind     LineKind
}

// Cmp establishes the (y, x) total order the Stitches container uses for
// geometric identity, comparing endpoints lexicographically.
func (l Line) Cmp(other Line) int {
	if c := l.Y0.Cmp(other.Y0); c != 0 {
		return c
	}
	if c := l.Y1.Cmp(other.Y1); c != 0 {
		return c
	}
	if c := l.X0.Cmp(other.X0); c != 0 {
		return c
	}
	return l.X1.Cmp(other.X1)
}

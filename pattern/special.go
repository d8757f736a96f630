package pattern

// SpecialStitch places an instance of a SpecialStitchModel on the grid, with
// an optional rotation/flip applied to the model's geometry.
type SpecialStitch struct {
	X, Y      Coord
	Rotation  uint16
	FlipX     bool
	FlipY     bool
	Palindex  uint8
	Modindex  uint16
}

// Cmp establishes the (y, x) total order the Stitches container uses for
// geometric identity.
func (s SpecialStitch) Cmp(other SpecialStitch) int {
	if c := s.Y.Cmp(other.Y); c != 0 {
		return c
	}
	return s.X.Cmp(other.X)
}

// SpecialStitchModel is a reusable bundle of lines, nodes and curves that a
// SpecialStitch instance places on the grid, keyed by Modindex into the
// pattern's SpecialStitchModels slice.
type SpecialStitchModel struct {
	UniqueName string
	Name       string
	Nodes      []Node
	Lines      []Line
	Curves     []Curve
}

// Curve is a freeform multi-point line, sampled at 1/30th-of-a-cell
// resolution by the XSD decoder.
type Curve struct {
	Points [][2]Coord
}

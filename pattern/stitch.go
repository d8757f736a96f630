package pattern

// Stitch is a closed sum of the four stitch variants a Pattern can hold.
// Exactly one field is non-nil; this stands in for Rust's `enum Stitch` so
// that history/event payloads can carry "some stitch, whichever variant"
// without dynamic dispatch.
type Stitch struct {
	Full *FullStitch
	Part *PartStitch
	Node *Node
	Line *Line
}

// StitchFromFull wraps a full/petite stitch as a Stitch.
func StitchFromFull(f FullStitch) Stitch { return Stitch{Full: &f} }

// StitchFromPart wraps a half/quarter stitch as a Stitch.
func StitchFromPart(p PartStitch) Stitch { return Stitch{Part: &p} }

// StitchFromNode wraps a node as a Stitch.
func StitchFromNode(n Node) Stitch { return Stitch{Node: &n} }

// StitchFromLine wraps a line as a Stitch.
func StitchFromLine(l Line) Stitch { return Stitch{Line: &l} }

// Bundle groups every stitch displaced by a single insert, so the action
// layer can revoke the insert by reinserting exactly what it displaced.
type Bundle struct {
	FullStitches []FullStitch
	PartStitches []PartStitch
	Node         *Node
	Line         *Line
}

// Flatten lists every displaced stitch as a Stitch, in the order they should
// be reinserted on revoke: full stitches first, then part stitches, then the
// node and line if present.
func (b Bundle) Flatten() []Stitch {
	out := make([]Stitch, 0, len(b.FullStitches)+len(b.PartStitches)+2)
	for _, f := range b.FullStitches {
		out = append(out, StitchFromFull(f))
	}
	for _, p := range b.PartStitches {
		out = append(out, StitchFromPart(p))
	}
	if b.Node != nil {
		out = append(out, StitchFromNode(*b.Node))
	}
	if b.Line != nil {
		out = append(out, StitchFromLine(*b.Line))
	}
	return out
}

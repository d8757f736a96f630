package pattern

import (
	"fmt"
	"strings"
)

// NodeKind distinguishes a French knot from a bead.
type NodeKind uint8

const (
	NodeKindFrenchKnot NodeKind = iota
	NodeKindBead
)

// String renders the OXS wire representation of a node kind.
func (k NodeKind) String() string {
	if k == NodeKindBead {
		return "bead"
	}
	return "knot"
}

// ParseNodeKind parses the OXS wire representation of a node kind. Any
// string starting with "bead" (the format also encodes bead length/diameter
// suffixed to the word) is accepted as a bead.
func ParseNodeKind(s string) (NodeKind, error) {
	if s == "knot" {
		return NodeKindFrenchKnot, nil
	}
	if strings.HasPrefix(s, "bead") {
		return NodeKindBead, nil
	}
	return 0, fmt.Errorf("unknown node kind %q", s)
}

// Node is a French knot or bead anchored at (X, Y).
type Node struct {
	X, Y     Coord
	Rotated  bool
	Palindex uint8
	Kind     NodeKind
}

// Cmp establishes the (y, x) total order the Stitches container uses for
// geometric identity.
func (n Node) Cmp(other Node) int {
	if c := n.Y.Cmp(other.Y); c != 0 {
		return c
	}
	return n.X.Cmp(other.X)
}

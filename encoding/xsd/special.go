package xsd

import "github.com/niusia-ua/embroidery-studio/pattern"

func readSpecialStitchModels(c *cursor) []pattern.SpecialStitchModel {
	c.seekRelative(2)
	count := int(c.u16())
	models := make([]pattern.SpecialStitchModel, 0, count)

	for i := 0; i < count; i++ {
		if c.u16() != 4 {
			continue
		}
		c.seekRelative(2)
		kindTag := c.readFull(4)
		if string(kindTag) != "sps1" {
			continue
		}

		model := pattern.SpecialStitchModel{
			UniqueName: c.cstring(specialStitchNameLength),
			Name:       c.cstring(specialStitchNameLength),
		}
		var shiftX, shiftY pattern.Coord
		c.seekRelative(2)

		for pass := 0; pass < 3; pass++ {
			if pass == 0 {
				c.seekRelative(2)
				shiftX = pattern.Coord(float32(c.u16()) / 2.0)
				shiftY = pattern.Coord(float32(c.u16()) / 2.0)
				c.seekRelative(4)
			} else {
				c.seekRelative(10)
			}

			if c.u16() != validSignature {
				break
			}

			jointsCount := c.u16()
			if jointsCount == 0 {
				continue
			}

			if pass == 0 || pass == 2 {
				nodes, lines, curves, _ := readJoints(c, jointsCount)
				model.Nodes = append(model.Nodes, nodes...)
				model.Lines = append(model.Lines, lines...)
				model.Curves = append(model.Curves, curves...)
			} else {
				readJoints(c, jointsCount)
			}
		}

		for ci := range model.Curves {
			for pi := range model.Curves[ci].Points {
				model.Curves[ci].Points[pi][0] -= shiftX
				model.Curves[ci].Points[pi][1] -= shiftY
			}
		}

		models = append(models, model)
	}

	return models
}

// decodeSpecialTransform maps the four raw transform parameters a special
// stitch placement stores onto a rotation/flip pair. The parameter encoding
// is a fixed, enumerated set of observed (param1..param4) tuples rather than
// a computed formula; values outside this set leave the stitch unrotated
// and unflipped.
func decodeSpecialTransform(p1, p2, p3, p4 uint16) (rotation uint16, flipX, flipY bool) {
	switch {
	case p1 == 0xFFFF && p2 == 0 && p3 == 0 && p4 == 1:
		flipX = true
	case p1 == 1 && p2 == 0 && p3 == 0 && p4 == 0xFFFF:
		flipY = true
	case p1 == 0xFFFF && p2 == 0 && p3 == 0 && p4 == 0xFFFF:
		flipX, flipY = true, true
	case p1 == 0 && p2 == 0xFFFF && p3 == 1 && p4 == 0:
		rotation = 90
	case p1 == 0 && p2 == 1 && p3 == 0xFFFF && p4 == 0:
		rotation = 270
	case p1 == 0 && p2 == 1 && p3 == 1 && p4 == 0:
		flipY, rotation = true, 90
	case p1 == 0 && p2 == 0xFFFF && p3 == 0xFFFF && p4 == 0:
		flipX, rotation = true, 90
	}
	return rotation, flipX, flipY
}

// readJoints decodes the french knots, beads, back/straight stitches,
// curves and special-stitch placements that follow the main stitch grid.
func readJoints(c *cursor, jointsCount uint16) ([]pattern.Node, []pattern.Line, []pattern.Curve, []pattern.SpecialStitch) {
	var nodes []pattern.Node
	var lines []pattern.Line
	var curves []pattern.Curve
	var specials []pattern.SpecialStitch

	for i := uint16(0); i < jointsCount; i++ {
		jointKind := c.u16()
		switch jointKind {
		case 1: // French knot.
			c.seekRelative(2)
			x := pattern.Coord(float32(c.u16()) / 2.0)
			y := pattern.Coord(float32(c.u16()) / 2.0)
			c.seekRelative(4)
			palindex := c.u8()
			c.seekRelative(1)
			nodes = append(nodes, pattern.Node{X: x, Y: y, Kind: pattern.NodeKindFrenchKnot, Palindex: palindex})

		case 2, 5: // Back or straight stitch.
			c.seekRelative(2)
			x1 := pattern.Coord(float32(c.u16()) / 2.0)
			y1 := pattern.Coord(float32(c.u16()) / 2.0)
			x2 := pattern.Coord(float32(c.u16()) / 2.0)
			y2 := pattern.Coord(float32(c.u16()) / 2.0)
			palindex := c.u8()
			c.seekRelative(1)
			kind := pattern.LineKindBack
			if jointKind == 5 {
				kind = pattern.LineKindStraight
			}
			lines = append(lines, pattern.Line{X0: x1, Y0: y1, X1: x2, Y1: y2, Palindex: palindex, Kind: kind})

		case 3: // Curve.
			c.seekRelative(3)
			pointsCount := int(c.u16())
			curve := pattern.Curve{Points: make([][2]pattern.Coord, 0, pointsCount)}
			for j := 0; j < pointsCount; j++ {
				px := pattern.Coord(float32(c.u16()) / 15.0 / 2.0)
				py := pattern.Coord(float32(c.u16()) / 15.0 / 2.0)
				curve.Points = append(curve.Points, [2]pattern.Coord{px, py})
			}
			curves = append(curves, curve)

		case 4: // Special stitch placement.
			c.seekRelative(2)
			palindex := c.u8()
			c.seekRelative(4)
			x := pattern.Coord(float32(c.u16()) / 2.0)
			y := pattern.Coord(float32(c.u16()) / 2.0)
			p1, p2, p3, p4 := c.u16(), c.u16(), c.u16(), c.u16()
			rotation, flipX, flipY := decodeSpecialTransform(p1, p2, p3, p4)
			c.seekRelative(2)
			modindex := c.u16()
			specials = append(specials, pattern.SpecialStitch{
				X: x, Y: y, Rotation: rotation, FlipX: flipX, FlipY: flipY,
				Palindex: palindex, Modindex: modindex,
			})

		case 6: // Bead.
			c.seekRelative(2)
			x := pattern.Coord(float32(c.u16()) / 2.0)
			y := pattern.Coord(float32(c.u16()) / 2.0)
			palindex := c.u8()
			c.seekRelative(1)
			rotationValue := c.u16()
			rotated := rotationValue == 90 || rotationValue == 270
			nodes = append(nodes, pattern.Node{X: x, Y: y, Rotated: rotated, Kind: pattern.NodeKindBead, Palindex: palindex})

		default:
			return nodes, lines, curves, specials
		}
	}

	return nodes, lines, curves, specials
}

package xsd

import "github.com/niusia-ua/embroidery-studio/pattern"

// readStitches decodes the cell-record stream into full/petite and
// half/quarter stitches, resolving the small-stitch buffers any
// multi-occupant cell points into.
func readStitches(c *cursor, coordFactor, totalStitchesCount, smallStitchesCount int) ([]pattern.FullStitch, []pattern.PartStitch) {
	stitchesData := readStitchesData(c, totalStitchesCount)
	smallStitchBuffers := readSmallStitchBuffers(c, smallStitchesCount)
	return mapStitchesDataIntoStitches(stitchesData, smallStitchBuffers, coordFactor)
}

func readSmallStitchBuffers(c *cursor, count int) [][10]byte {
	buffers := make([][10]byte, count)
	for i := range buffers {
		copy(buffers[i][:], c.readFull(10))
	}
	return buffers
}

// smallStitchPosition names the quadrant (or non-quadrant, for half
// stitches) a small-stitch bit-flag addresses, used to derive the
// coordinate offset within its cell.
type smallStitchPosition uint8

const (
	posTopLeft smallStitchPosition = iota
	posTopRight
	posBottomLeft
	posBottomRight
	posOther
)

func adjustSmallStitchCoords(x, y pattern.Coord, pos smallStitchPosition) (pattern.Coord, pattern.Coord) {
	switch pos {
	case posTopRight:
		return x + 0.5, y
	case posBottomLeft:
		return x, y + 0.5
	case posBottomRight:
		return x + 0.5, y + 0.5
	default:
		return x, y
	}
}

type petiteFlag struct {
	byteIndex, bit int
	palindexIndex  int
	pos            smallStitchPosition
}

var petiteFlags = []petiteFlag{
	{1, 1, 4, posTopLeft},
	{1, 2, 5, posBottomLeft},
	{1, 4, 6, posTopRight},
	{1, 8, 7, posBottomRight},
}

type partFlag struct {
	byteIndex, bit int
	palindexIndex  int
	pos            smallStitchPosition
	direction      pattern.PartStitchDirection
	kind           pattern.PartStitchKind
}

var partFlags = []partFlag{
	{0, 1, 2, posOther, pattern.PartStitchDirectionBackward, pattern.PartStitchKindHalf},
	{0, 2, 3, posOther, pattern.PartStitchDirectionForward, pattern.PartStitchKindHalf},
	{0, 4, 4, posTopLeft, pattern.PartStitchDirectionBackward, pattern.PartStitchKindQuarter},
	{0, 8, 5, posBottomLeft, pattern.PartStitchDirectionForward, pattern.PartStitchKindQuarter},
	{0, 16, 6, posTopRight, pattern.PartStitchDirectionForward, pattern.PartStitchKindQuarter},
	{0, 32, 7, posBottomRight, pattern.PartStitchDirectionBackward, pattern.PartStitchKindQuarter},
}

func mapStitchesDataIntoStitches(stitchesData []int32, smallStitchBuffers [][10]byte, coordFactor int) ([]pattern.FullStitch, []pattern.PartStitch) {
	var fulls []pattern.FullStitch
	var parts []pattern.PartStitch

	for i, stitchData := range stitchesData {
		b3 := byte(uint32(stitchData) >> 24)
		if b3 == 15 { // Empty cell.
			continue
		}

		x := pattern.Coord(i % coordFactor)
		y := pattern.Coord(i / coordFactor)

		if b3 == 0 {
			b2 := byte(uint32(stitchData) >> 16)
			fulls = append(fulls, pattern.FullStitch{X: x, Y: y, Palindex: b2, Kind: pattern.FullStitchKindFull})
			continue
		}

		position := int((stitchData >> 16) & 0x7FFF)
		if position < 0 || position >= len(smallStitchBuffers) {
			continue
		}
		buf := smallStitchBuffers[position]

		for _, f := range petiteFlags {
			if buf[f.byteIndex]&byte(f.bit) == 0 {
				continue
			}
			px, py := adjustSmallStitchCoords(x, y, f.pos)
			fulls = append(fulls, pattern.FullStitch{X: px, Y: py, Palindex: buf[f.palindexIndex], Kind: pattern.FullStitchKindPetite})
		}

		for _, f := range partFlags {
			if buf[f.byteIndex]&byte(f.bit) == 0 {
				continue
			}
			px, py := adjustSmallStitchCoords(x, y, f.pos)
			parts = append(parts, pattern.PartStitch{X: px, Y: py, Palindex: buf[f.palindexIndex], Direction: f.direction, Kind: f.kind})
		}
	}

	return fulls, parts
}

// Package v1 implements OXS version 1.0, in both of its observed producer
// dialects.
package v1

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/pattern/display"
	"github.com/niusia-ua/embroidery-studio/pattern/print"
	"github.com/niusia-ua/embroidery-studio/project"
)

// Software identifies which producer dialect a document follows. The two
// dialects diverge on blend sub-elements (Embroidery Studio only) and on
// special_stitch_models (also Embroidery Studio only).
type Software string

const (
	SoftwareUrsa             Software = "Ursa Software"
	SoftwareEmbroideryStudio Software = "Embroidery Studio"
)

func attrMap(se xml.StartElement) map[string]string {
	m := make(map[string]string, len(se.Attr))
	for _, at := range se.Attr {
		m[at.Name.Local] = at.Value
	}
	return m
}

func parseCoord(s string) (pattern.Coord, error) {
	f, err := strconv.ParseFloat(s, 64)
	return pattern.Coord(f), err
}

// Parse reads a full OXS 1.0 document from r.
func Parse(r io.Reader, software string) (*project.Project, error) {
	dec := xml.NewDecoder(r)

	pat := &pattern.Pattern{
		FullStitches:    pattern.NewStitches[pattern.FullStitch](),
		PartStitches:    pattern.NewStitches[pattern.PartStitch](),
		Nodes:           pattern.NewStitches[pattern.Node](),
		Lines:           pattern.NewStitches[pattern.Line](),
		SpecialStitches: pattern.NewStitches[pattern.SpecialStitch](),
	}
	paletteSizeSet := false
	var paletteSize int

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "oxs: read token")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "chart" {
				break
			}
			continue
		}

		switch se.Name.Local {
		case "properties":
			properties, info, spiW, spiH, palsize, err := parsePatternProperties(attrMap(se))
			if err != nil {
				return nil, err
			}
			pat.Properties = properties
			pat.Info = info
			pat.Fabric.SpiWidth, pat.Fabric.SpiHeight = spiW, spiH
			paletteSize, paletteSizeSet = palsize, true

		case "palette":
			if !paletteSizeSet {
				return nil, errors.New("oxs: palette encountered before properties")
			}
			fabric, palette, err := parsePalette(dec, Software(software), paletteSize)
			if err != nil {
				return nil, err
			}
			fabric.SpiWidth, fabric.SpiHeight = pat.Fabric.SpiWidth, pat.Fabric.SpiHeight
			pat.Fabric = fabric
			pat.Palette = palette

		case "fullstitches":
			fulls, err := parseFullStitches(dec)
			if err != nil {
				return nil, err
			}
			for _, f := range fulls {
				pat.FullStitches.Insert(f)
			}

		case "partstitches":
			parts, err := parsePartStitches(dec)
			if err != nil {
				return nil, err
			}
			for _, p := range parts {
				pat.PartStitches.Insert(p)
			}

		case "backstitches":
			lines, err := parseLines(dec, "backstitches")
			if err != nil {
				return nil, err
			}
			for _, l := range lines {
				pat.Lines.Insert(l)
			}

		case "ornaments_inc_knots_and_beads":
			fulls, nodes, specials, err := parseOrnaments(dec)
			if err != nil {
				return nil, err
			}
			for _, f := range fulls {
				pat.FullStitches.Insert(f)
			}
			for _, n := range nodes {
				pat.Nodes.Insert(n)
			}
			for _, s := range specials {
				pat.SpecialStitches.Insert(s)
			}

		case "special_stitch_models":
			if Software(software) == SoftwareEmbroideryStudio {
				models, err := parseSpecialStitchModels(dec)
				if err != nil {
					return nil, err
				}
				pat.SpecialStitchModels = append(pat.SpecialStitchModels, models...)
			}
		}
	}

	return &project.Project{
		Pattern: pat,
		Display: display.New(len(pat.Palette)),
		Print:   print.New(),
	}, nil
}

func parsePatternProperties(attrs map[string]string) (pattern.PatternProperties, pattern.PatternInfo, uint16, uint16, int, error) {
	width, err := strconv.ParseUint(attrs["chartwidth"], 10, 16)
	if err != nil {
		return pattern.PatternProperties{}, pattern.PatternInfo{}, 0, 0, 0, errors.Wrap(err, "oxs: chartwidth")
	}
	height, err := strconv.ParseUint(attrs["chartheight"], 10, 16)
	if err != nil {
		return pattern.PatternProperties{}, pattern.PatternInfo{}, 0, 0, 0, errors.Wrap(err, "oxs: chartheight")
	}
	spiX, err := strconv.ParseUint(attrs["stitchesperinch"], 10, 16)
	if err != nil {
		return pattern.PatternProperties{}, pattern.PatternInfo{}, 0, 0, 0, errors.Wrap(err, "oxs: stitchesperinch")
	}
	spiY, err := strconv.ParseUint(attrs["stitchesperinch_y"], 10, 16)
	if err != nil {
		return pattern.PatternProperties{}, pattern.PatternInfo{}, 0, 0, 0, errors.Wrap(err, "oxs: stitchesperinch_y")
	}
	palsize, err := strconv.Atoi(attrs["palettecount"])
	if err != nil {
		return pattern.PatternProperties{}, pattern.PatternInfo{}, 0, 0, 0, errors.Wrap(err, "oxs: palettecount")
	}

	properties := pattern.PatternProperties{Width: uint16(width), Height: uint16(height)}
	info := pattern.PatternInfo{
		Title:       attrs["charttitle"],
		Author:      attrs["author"],
		Company:     attrs["company"],
		Copyright:   attrs["copyright"],
		Description: attrs["instructions"],
	}
	return properties, info, uint16(spiX), uint16(spiY), palsize, nil
}

// parseBrandAndNumber splits a "<brand words...> <number>" value on its
// final space, matching the original's right-anchored split.
func parseBrandAndNumber(value string) (brand, number string) {
	parts := strings.Split(value, " ")
	if len(parts) == 1 {
		return "", parts[0]
	}
	return strings.TrimRight(strings.Join(parts[:len(parts)-1], " "), " "), parts[len(parts)-1]
}

func parsePalette(dec *xml.Decoder, software Software, paletteSize int) (pattern.Fabric, []pattern.PaletteItem, error) {
	fabric := pattern.DefaultFabric()

	// First child is the fabric's own palette_item entry.
	se, err := nextStart(dec)
	if err != nil {
		return fabric, nil, errors.Wrap(err, "oxs: fabric palette item")
	}
	attrs := attrMap(se)
	fabric.Name = attrs["name"]
	fabric.Color = attrs["color"]
	if kind, ok := attrs["kind"]; ok {
		fabric.Kind = kind
	}
	if err := dec.Skip(); err != nil {
		return fabric, nil, errors.Wrap(err, "oxs: skip fabric palette item")
	}

	palette := make([]pattern.PaletteItem, 0, paletteSize)
	for i := 0; i < paletteSize; i++ {
		se, err := nextStart(dec)
		if err != nil {
			return fabric, nil, errors.Wrap(err, "oxs: palette item")
		}
		attrs := attrMap(se)
		brand, number := parseBrandAndNumber(attrs["number"])
		item := pattern.PaletteItem{Brand: brand, Number: number, Name: attrs["name"], Color: attrs["color"]}

		if software == SoftwareEmbroideryStudio {
			for {
				tok, err := dec.Token()
				if err != nil {
					return fabric, nil, errors.Wrap(err, "oxs: palette item children")
				}
				if bse, ok := tok.(xml.StartElement); ok && bse.Name.Local == "blend" {
					battrs := attrMap(bse)
					bbrand, bnumber := parseBrandAndNumber(battrs["number"])
					item.Blends = append(item.Blends, pattern.Blend{Brand: bbrand, Number: bnumber, Strands: 1})
					if err := dec.Skip(); err != nil {
						return fabric, nil, errors.Wrap(err, "oxs: skip blend")
					}
					continue
				}
				if end, ok := tok.(xml.EndElement); ok && end.Name.Local == se.Name.Local {
					break
				}
			}
		} else if err := dec.Skip(); err != nil {
			return fabric, nil, errors.Wrap(err, "oxs: skip palette item")
		}

		palette = append(palette, item)
	}

	return fabric, palette, nil
}

// nextStart returns the next StartElement token, skipping anything else
// (whitespace, comments) until it finds one or hits EOF.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func parseFullStitches(dec *xml.Decoder) ([]pattern.FullStitch, error) {
	var out []pattern.FullStitch
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "oxs: fullstitches")
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "stitch" {
			attrs := attrMap(se)
			x, err := parseCoord(attrs["x"])
			if err != nil {
				return nil, err
			}
			y, err := parseCoord(attrs["y"])
			if err != nil {
				return nil, err
			}
			palindex, err := strconv.ParseUint(attrs["palindex"], 10, 8)
			if err != nil {
				return nil, err
			}
			out = append(out, pattern.FullStitch{X: x, Y: y, Palindex: uint8(palindex - 1), Kind: pattern.FullStitchKindFull})
			continue
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "fullstitches" {
			return out, nil
		}
	}
}

func parsePartStitches(dec *xml.Decoder) ([]pattern.PartStitch, error) {
	var out []pattern.PartStitch
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "oxs: partstitches")
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "partstitches" {
				return out, nil
			}
			continue
		}
		if se.Name.Local != "partstitch" {
			continue
		}
		attrs := attrMap(se)
		x, err := parseCoord(attrs["x"])
		if err != nil {
			return nil, err
		}
		y, err := parseCoord(attrs["y"])
		if err != nil {
			return nil, err
		}
		directionValue, err := strconv.ParseUint(attrs["direction"], 10, 8)
		if err != nil {
			return nil, err
		}

		var direction pattern.PartStitchDirection
		var kind pattern.PartStitchKind
		switch directionValue {
		case 1, 3:
			direction = pattern.PartStitchDirectionForward
		case 2, 4:
			direction = pattern.PartStitchDirectionBackward
		default:
			return nil, fmt.Errorf("oxs: unknown part stitch direction %d", directionValue)
		}
		switch directionValue {
		case 1, 2:
			kind = pattern.PartStitchKindQuarter
		case 3, 4:
			kind = pattern.PartStitchKindHalf
		}

		palindex1, err := strconv.ParseUint(attrs["palindex1"], 10, 8)
		if err != nil {
			return nil, err
		}
		palindex2, err := strconv.ParseUint(attrs["palindex2"], 10, 8)
		if err != nil {
			return nil, err
		}

		if palindex1 != 0 {
			px, py := x, y
			if directionValue == 1 {
				py += 0.5
			}
			out = append(out, pattern.PartStitch{X: px, Y: py, Palindex: uint8(palindex1 - 1), Kind: kind, Direction: direction})
		}
		if palindex2 != 0 {
			px, py := x, y
			switch directionValue {
			case 1:
				px += 0.5
			case 2:
				px, py = px+0.5, py+0.5
			}
			out = append(out, pattern.PartStitch{X: px, Y: py, Palindex: uint8(palindex2 - 1), Kind: kind, Direction: direction})
		}
	}
}

func parseLines(dec *xml.Decoder, closeTag string) ([]pattern.Line, error) {
	var out []pattern.Line
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "oxs: "+closeTag)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == closeTag {
				return out, nil
			}
			continue
		}
		if se.Name.Local != "backstitch" {
			continue
		}
		attrs := attrMap(se)
		x1, _ := parseCoord(attrs["x1"])
		x2, _ := parseCoord(attrs["x2"])
		y1, _ := parseCoord(attrs["y1"])
		y2, _ := parseCoord(attrs["y2"])
		palindex, err := strconv.ParseUint(attrs["palindex"], 10, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, pattern.Line{
			X0: x1, X1: x2, Y0: y1, Y1: y2,
			Palindex: uint8(palindex - 1),
			Kind:     pattern.ParseLineKind(attrs["objecttype"]),
		})
	}
}

func parseOrnaments(dec *xml.Decoder) ([]pattern.FullStitch, []pattern.Node, []pattern.SpecialStitch, error) {
	var fulls []pattern.FullStitch
	var nodes []pattern.Node
	var specials []pattern.SpecialStitch

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "oxs: ornaments")
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "ornaments_inc_knots_and_beads" {
				return fulls, nodes, specials, nil
			}
			continue
		}
		if se.Name.Local != "object" {
			continue
		}
		attrs := attrMap(se)
		x, _ := parseCoord(attrs["x1"])
		y, _ := parseCoord(attrs["y1"])
		rotated := attrs["rotated"] == "true"
		palindex, err := strconv.ParseUint(attrs["palindex"], 10, 8)
		if err != nil {
			return nil, nil, nil, err
		}
		kind := attrs["objecttype"]

		switch {
		case kind == "quarter":
			fulls = append(fulls, pattern.FullStitch{X: x, Y: y, Palindex: uint8(palindex - 1), Kind: pattern.FullStitchKindPetite})
		case strings.HasPrefix(kind, "bead") || kind == "knot":
			nk, err := pattern.ParseNodeKind(kind)
			if err != nil {
				return nil, nil, nil, err
			}
			nodes = append(nodes, pattern.Node{X: x, Y: y, Rotated: rotated, Palindex: uint8(palindex - 1), Kind: nk})
		case kind == "special":
			rotation, _ := strconv.ParseUint(attrs["rotation"], 10, 16)
			flipX := attrs["flip_x"] == "true"
			flipY := attrs["flip_y"] == "true"
			modindex, _ := strconv.ParseUint(attrs["modindex"], 10, 16)
			specials = append(specials, pattern.SpecialStitch{
				X: x, Y: y, Rotation: uint16(rotation), FlipX: flipX, FlipY: flipY,
				Palindex: uint8(palindex - 1), Modindex: uint16(modindex),
			})
		}
	}
}

func parseSpecialStitchModels(dec *xml.Decoder) ([]pattern.SpecialStitchModel, error) {
	var models []pattern.SpecialStitchModel
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "oxs: special_stitch_models")
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "special_stitch_models" {
				return models, nil
			}
			continue
		}
		if se.Name.Local != "model" {
			continue
		}
		attrs := attrMap(se)
		model := pattern.SpecialStitchModel{UniqueName: attrs["unique_name"], Name: attrs["name"]}

		for {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			cse, ok := tok.(xml.StartElement)
			if !ok {
				if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "model" {
					break
				}
				continue
			}
			switch cse.Name.Local {
			case "line":
				attrs := attrMap(cse)
				x1, _ := parseCoord(attrs["x1"])
				x2, _ := parseCoord(attrs["x2"])
				y1, _ := parseCoord(attrs["y1"])
				y2, _ := parseCoord(attrs["y2"])
				model.Lines = append(model.Lines, pattern.Line{X0: x1, X1: x2, Y0: y1, Y1: y2, Kind: pattern.ParseLineKind(attrs["kind"])})
			case "node":
				attrs := attrMap(cse)
				x, _ := parseCoord(attrs["x"])
				y, _ := parseCoord(attrs["y"])
				nk, err := pattern.ParseNodeKind(attrs["kind"])
				if err != nil {
					return nil, err
				}
				model.Nodes = append(model.Nodes, pattern.Node{X: x, Y: y, Rotated: attrs["rotated"] == "true", Kind: nk})
			case "curve":
				var points [][2]pattern.Coord
				for {
					tok, err := dec.Token()
					if err != nil {
						return nil, err
					}
					if pse, ok := tok.(xml.StartElement); ok && pse.Name.Local == "point" {
						attrs := attrMap(pse)
						x, _ := parseCoord(attrs["x"])
						y, _ := parseCoord(attrs["y"])
						points = append(points, [2]pattern.Coord{x, y})
						continue
					}
					if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "curve" {
						break
					}
				}
				model.Curves = append(model.Curves, pattern.Curve{Points: points})
			}
		}

		models = append(models, model)
	}
}

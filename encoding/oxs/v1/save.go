package v1

import (
	"io"
	"strconv"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/project"
)

// Save writes proj as an OXS 1.0 document in the Embroidery Studio dialect:
// the only dialect this package produces, regardless of which dialect the
// project was originally read from.
func Save(w io.Writer, proj *project.Project, indent bool) error {
	pat := proj.Pattern
	ww := newWriter(w, indent)

	ww.decl()
	ww.writeIndent()
	ww.write([]byte("<chart>"))
	ww.depth++

	writeProperties(ww, pat)
	writePalette(ww, pat)
	writeFullStitches(ww, pat)
	writePartStitches(ww, pat)
	writeLines(ww, pat)
	writeOrnaments(ww, pat)
	writeSpecialStitchModels(ww, pat)

	ww.depth--
	ww.writeIndent()
	ww.write([]byte("</chart>"))
	if indent {
		ww.write([]byte("\n"))
	}
	return ww.err
}

func formatCoord(c pattern.Coord) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 64)
}

func writeProperties(w *writer, pat *pattern.Pattern) {
	w.empty("properties", []attr{
		a("oxsversion", "1.0"),
		a("software", string(SoftwareEmbroideryStudio)),
		a("software_version", "1.0"),
		a("chartwidth", strconv.Itoa(int(pat.Properties.Width))),
		a("chartheight", strconv.Itoa(int(pat.Properties.Height))),
		a("charttitle", pat.Info.Title),
		a("author", pat.Info.Author),
		a("company", pat.Info.Company),
		a("copyright", pat.Info.Copyright),
		a("instructions", pat.Info.Description),
		a("stitchesperinch", strconv.Itoa(int(pat.Fabric.SpiWidth))),
		a("stitchesperinch_y", strconv.Itoa(int(pat.Fabric.SpiHeight))),
		a("palettecount", strconv.Itoa(len(pat.Palette))),
	})
}

func formatBrandAndNumber(brand, number string) string {
	if brand == "" {
		return number
	}
	return brand + " " + number
}

func writePalette(w *writer, pat *pattern.Pattern) {
	w.writeIndent()
	w.write([]byte("<palette>"))
	w.depth++

	w.empty("palette_item", []attr{
		a("index", "0"),
		a("number", "cloth"),
		a("name", pat.Fabric.Name),
		a("color", pat.Fabric.Color),
	})

	for i, item := range pat.Palette {
		if len(item.Blends) == 0 {
			w.empty("palette_item", []attr{
				a("index", strconv.Itoa(i+1)),
				a("number", formatBrandAndNumber(item.Brand, item.Number)),
				a("name", item.Name),
				a("color", item.Color),
			})
			continue
		}

		w.openAttrs("palette_item", []attr{
			a("index", strconv.Itoa(i+1)),
			a("number", formatBrandAndNumber(item.Brand, item.Number)),
			a("name", item.Name),
			a("color", item.Color),
			a("blendscount", strconv.Itoa(len(item.Blends))),
		})
		for _, blend := range item.Blends {
			w.empty("blend", []attr{
				a("number", formatBrandAndNumber(blend.Brand, blend.Number)),
			})
		}
		w.close("palette_item")
	}

	w.depth--
	w.close("palette")
}

func writeFullStitches(w *writer, pat *pattern.Pattern) {
	w.writeIndent()
	w.write([]byte("<fullstitches>"))
	w.depth++
	for _, f := range pat.FullStitches.All() {
		if f.Kind != pattern.FullStitchKindFull {
			continue
		}
		w.empty("stitch", []attr{
			a("x", formatCoord(f.X)),
			a("y", formatCoord(f.Y)),
			a("palindex", strconv.Itoa(int(f.Palindex)+1)),
		})
	}
	w.depth--
	w.close("fullstitches")
}

// directionValue returns the OXS wire direction code (1-4) for a part
// stitch: 1/2 for a Forward/Backward quarter, 3/4 for a Forward/Backward
// half.
func directionValue(p pattern.PartStitch) int {
	switch p.Kind {
	case pattern.PartStitchKindQuarter:
		return int(p.Direction)
	default: // Half
		return int(p.Direction) + 2
	}
}

func writePartStitches(w *writer, pat *pattern.Pattern) {
	w.writeIndent()
	w.write([]byte("<partstitches>"))
	w.depth++

	all := pat.PartStitches.All()
	seenQuarters := make(map[[2]pattern.Coord]bool)

	findQuarterAt := func(x, y pattern.Coord) *pattern.PartStitch {
		for i := range all {
			q := all[i]
			if q.Kind == pattern.PartStitchKindQuarter && q.X == x && q.Y == y {
				return &q
			}
		}
		return nil
	}

	for _, p := range all {
		if p.Kind != pattern.PartStitchKindQuarter {
			continue
		}
		key := [2]pattern.Coord{p.X.Trunc(), p.Y.Trunc()}
		if seenQuarters[key] {
			continue
		}

		var partner *pattern.PartStitch
		switch {
		case p.IsOnTopLeft():
			partner = findQuarterAt(p.X+0.5, p.Y)
		case p.IsOnTopRight():
			partner = findQuarterAt(p.X-0.5, p.Y)
		case p.IsOnBottomLeft():
			partner = findQuarterAt(p.X, p.Y-0.5)
		case p.IsOnBottomRight():
			if q := findQuarterAt(p.X, p.Y-0.5); q != nil {
				partner = q
			} else {
				partner = findQuarterAt(p.X-0.5, p.Y)
			}
		}

		x, y := p.X.Trunc(), p.Y.Trunc()
		palindex1 := int(p.Palindex) + 1
		palindex2 := 0
		dv := directionValue(p)
		if partner != nil {
			palindex2 = int(partner.Palindex) + 1
			seenQuarters[key] = true
		}

		w.empty("partstitch", []attr{
			a("x", formatCoord(x)),
			a("y", formatCoord(y)),
			a("palindex1", strconv.Itoa(palindex1)),
			a("palindex2", strconv.Itoa(palindex2)),
			a("direction", strconv.Itoa(dv)),
		})
	}

	for _, p := range all {
		if p.Kind != pattern.PartStitchKindHalf {
			continue
		}
		w.empty("partstitch", []attr{
			a("x", formatCoord(p.X)),
			a("y", formatCoord(p.Y)),
			a("palindex1", strconv.Itoa(int(p.Palindex)+1)),
			a("palindex2", "0"),
			a("direction", strconv.Itoa(directionValue(p))),
		})
	}

	w.depth--
	w.close("partstitches")
}

func writeLines(w *writer, pat *pattern.Pattern) {
	w.writeIndent()
	w.write([]byte("<backstitches>"))
	w.depth++
	for _, l := range pat.Lines.All() {
		w.empty("backstitch", []attr{
			a("x1", formatCoord(l.X0)),
			a("y1", formatCoord(l.Y0)),
			a("x2", formatCoord(l.X1)),
			a("y2", formatCoord(l.Y1)),
			a("palindex", strconv.Itoa(int(l.Palindex)+1)),
			a("objecttype", l.Kind.String()),
		})
	}
	w.depth--
	w.close("backstitches")
}

func writeOrnaments(w *writer, pat *pattern.Pattern) {
	w.writeIndent()
	w.write([]byte("<ornaments_inc_knots_and_beads>"))
	w.depth++

	for _, f := range pat.FullStitches.All() {
		if f.Kind != pattern.FullStitchKindPetite {
			continue
		}
		w.empty("object", []attr{
			a("x1", formatCoord(f.X)),
			a("y1", formatCoord(f.Y)),
			a("palindex", strconv.Itoa(int(f.Palindex)+1)),
			a("objecttype", "quarter"),
		})
	}

	for _, n := range pat.Nodes.All() {
		w.empty("object", []attr{
			a("x1", formatCoord(n.X)),
			a("y1", formatCoord(n.Y)),
			a("rotated", strconv.FormatBool(n.Rotated)),
			a("palindex", strconv.Itoa(int(n.Palindex)+1)),
			a("objecttype", n.Kind.String()),
		})
	}

	for _, s := range pat.SpecialStitches.All() {
		w.empty("object", []attr{
			a("x1", formatCoord(s.X)),
			a("y1", formatCoord(s.Y)),
			a("rotation", strconv.Itoa(int(s.Rotation))),
			a("flip_x", strconv.FormatBool(s.FlipX)),
			a("flip_y", strconv.FormatBool(s.FlipY)),
			a("palindex", strconv.Itoa(int(s.Palindex)+1)),
			a("modindex", strconv.Itoa(int(s.Modindex))),
			a("objecttype", "special"),
		})
	}

	w.depth--
	w.close("ornaments_inc_knots_and_beads")
}

func writeSpecialStitchModels(w *writer, pat *pattern.Pattern) {
	if len(pat.SpecialStitchModels) == 0 {
		return
	}

	w.writeIndent()
	w.write([]byte("<special_stitch_models>"))
	w.depth++

	for _, model := range pat.SpecialStitchModels {
		w.openAttrs("model", []attr{
			a("unique_name", model.UniqueName),
			a("name", model.Name),
		})
		for _, l := range model.Lines {
			w.empty("line", []attr{
				a("x1", formatCoord(l.X0)),
				a("y1", formatCoord(l.Y0)),
				a("x2", formatCoord(l.X1)),
				a("y2", formatCoord(l.Y1)),
				a("kind", l.Kind.String()),
			})
		}
		for _, n := range model.Nodes {
			w.empty("node", []attr{
				a("x", formatCoord(n.X)),
				a("y", formatCoord(n.Y)),
				a("rotated", strconv.FormatBool(n.Rotated)),
				a("kind", n.Kind.String()),
			})
		}
		for _, c := range model.Curves {
			w.openAttrs("curve", nil)
			for _, pt := range c.Points {
				w.empty("point", []attr{
					a("x", formatCoord(pt[0])),
					a("y", formatCoord(pt[1])),
				})
			}
			w.close("curve")
		}
		w.close("model")
	}

	w.depth--
	w.close("special_stitch_models")
}

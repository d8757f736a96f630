// Package xsd decodes the proprietary XSD pattern format produced by
// Pattern Maker. The format was never published; this reader follows the
// structure recovered by reverse-engineering sample files, so it necessarily
// covers only enough of the layout to recover a pattern's stitches, palette
// and display/print settings. There is no writer: nothing in this project
// produces XSD files, only reads patterns authored elsewhere.
package xsd

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/pattern/display"
	"github.com/niusia-ua/embroidery-studio/pattern/print"
	"github.com/niusia-ua/embroidery-studio/project"
)

const validSignature uint16 = 0x0510

const (
	colorNumberLength  = 10
	colorNameLength    = 40
	blendColorsNumber  = 4
	patternNameLength  = 40
	authorNameLength   = 40
	companyNameLength  = 40
	copyrightLength    = 200
	patternNotesLength = 2048
	fabricColorLength  = 40
	fabricKindLength   = 40
	fontNameLength     = 32
	formatLength       = 240
	stitchTypesNumber  = 9
	pageHeaderFooterLen = 119
	specialStitchNameLength = 255
)

// Parse reads a complete XSD pattern file from r.
func Parse(r io.Reader) (*project.Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "xsd: read input")
	}
	c := newCursor(bytes.NewReader(data))

	if signature := c.u16(); signature != validSignature {
		return nil, errors.Errorf("xsd: invalid signature %#04x, expected %#04x", signature, validSignature)
	}
	c.seekRelative(739) // Unknown data.

	width := c.u16()
	height := c.u16()
	coordFactor := int(width)
	totalStitchesCount := int(width) * int(height)
	smallStitchesCount := int(c.u32())
	jointsCount := c.u16()

	spiWidth := c.u16()
	spiHeight := c.u16()
	c.seekRelative(6)

	fabric, palette := readPalette(c)
	formats := readFormats(c, len(palette))
	symbols := readSymbols(c, len(palette))

	settings := readPatternSettings(c)
	grid := readGridSettings(c)

	fabric.Name = c.cstring(fabricColorLength)
	fabric.Color = c.hexColor()
	c.seekRelative(65)
	info := readPatternInfo(c)
	c.seekRelative(6)
	fabric.Kind = c.cstring(fabricKindLength)
	c.seekRelative(206)
	fabric.SpiWidth, fabric.SpiHeight = spiWidth, spiHeight

	stitchSettings, outlinedStitches, stitchOutline := readStitchSettings(c)
	symbolSettings := readSymbolSettings(c)

	c.seekRelative(16412) // Library info.
	c.seekRelative(512)   // Machine export info.

	fullstitches, partstitches := readStitches(c, coordFactor, totalStitchesCount, smallStitchesCount)
	specialStitchModels := readSpecialStitchModels(c)
	nodes, lines, _, specials := readJoints(c, jointsCount)

	if c.err != nil {
		return nil, c.err
	}

	pat := &pattern.Pattern{
		Properties:          pattern.PatternProperties{Width: width, Height: height},
		Info:                info,
		Palette:             palette,
		Fabric:              fabric,
		FullStitches:        pattern.NewStitches[pattern.FullStitch](),
		PartStitches:        pattern.NewStitches[pattern.PartStitch](),
		Nodes:               pattern.NewStitches[pattern.Node](),
		Lines:               pattern.NewStitches[pattern.Line](),
		SpecialStitches:     pattern.NewStitches[pattern.SpecialStitch](),
		SpecialStitchModels: specialStitchModels,
	}
	for _, f := range fullstitches {
		pat.FullStitches.Insert(f)
	}
	for _, p := range partstitches {
		pat.PartStitches.Insert(p)
	}
	for _, n := range nodes {
		pat.Nodes.Insert(n)
	}
	for _, l := range lines {
		pat.Lines.Insert(l)
	}
	for _, s := range specials {
		pat.SpecialStitches.Insert(s)
	}

	return &project.Project{
		Pattern: pat,
		Display: &display.Settings{
			DefaultStitchFont:  settings.stitchFontName,
			View:               settings.view,
			Zoom:               settings.zoom,
			ShowGrid:           settings.showGrid,
			ShowRulers:         settings.showRulers,
			ShowCenteringMarks: settings.showCenteringMarks,
			GapsBetweenStitches: settings.gapsBetweenStitches,
			OutlinedStitches:   outlinedStitches,
			StitchOutline:      stitchOutline,
			Grid:               grid,
			StitchSettings:     stitchSettings,
			SymbolSettings:     symbolSettings,
			Symbols:            symbols,
			Formats:            formats,
		},
		Print: &print.Settings{
			Font:                    settings.font,
			Header:                  settings.pageHeader,
			Footer:                  settings.pageFooter,
			Margins:                 settings.pageMargins,
			ShowPageNumbers:         settings.showPageNumbers,
			ShowAdjacentPageNumbers: settings.showAdjacentPageNumbers,
			CenterChartOnPages:      settings.centerChartOnPages,
		},
	}, nil
}

func readPalette(c *cursor) (pattern.Fabric, []pattern.PaletteItem) {
	fabric := pattern.DefaultFabric()
	paletteSize := int(c.u16())
	palette := make([]pattern.PaletteItem, 0, paletteSize)

	for i := 0; i < paletteSize; i++ {
		palette = append(palette, readPaletteItem(c))
	}

	c.seekRelative(int64(paletteSize * 2)) // Palette item position.
	skipPaletteItemsNotes(c, paletteSize)

	for i := range palette {
		palette[i].Strands = readPaletteItemStrands(c)
	}

	return fabric, palette
}

func readPaletteItem(c *cursor) pattern.PaletteItem {
	c.seekRelative(2)
	brandID := c.u8()
	brand := flossBrandName(brandID)
	number := c.cstring(colorNumberLength)
	name := c.cstring(colorNameLength)
	color := c.hexColor()
	c.seekRelative(1)
	blends := readBlends(c)
	isBead := c.u32() == 1
	var bead *pattern.Bead
	if isBead {
		diameter := float32(c.u16()) / 10.0
		length := float32(c.u16()) / 10.0
		bead = &pattern.Bead{Diameter: diameter, Length: length}
	} else {
		c.seekRelative(4)
	}
	c.seekRelative(2)

	return pattern.PaletteItem{Brand: brand, Number: number, Name: name, Color: color, Blends: blends, Bead: bead}
}

func readBlends(c *cursor) []pattern.Blend {
	blendsCount := int(c.u16())
	blends := make([]pattern.Blend, 0, blendsCount)
	for i := 0; i < blendsCount; i++ {
		brandID := c.u8()
		number := c.cstring(colorNumberLength)
		blends = append(blends, pattern.Blend{Brand: flossBrandName(brandID), Number: number})
	}
	c.seekRelative(int64((blendColorsNumber - blendsCount) * 12))

	for i := range blends {
		blends[i].Strands = c.u8()
	}
	c.seekRelative(int64(blendColorsNumber - blendsCount))

	if len(blends) == 0 {
		return nil
	}
	return blends
}

func skipPaletteItemsNotes(c *cursor, paletteSize int) {
	for i := 0; i < paletteSize; i++ {
		for j := 0; j < stitchTypesNumber; j++ {
			noteLength := c.u16()
			c.seekRelative(int64(noteLength))
		}
	}
}

func readPaletteItemStrands(c *cursor) pattern.StitchStrands {
	full := uint8(c.u16())
	half := uint8(c.u16())
	quarter := uint8(c.u16())
	back := uint8(c.u16())
	frenchKnot := uint8(c.u16())
	petite := uint8(c.u16())
	special := uint8(c.u16())
	straight := uint8(c.u16())

	strands := pattern.StitchStrands{
		Full: full, Half: half, Quarter: quarter, Back: back,
		FrenchKnot: frenchKnot, Petite: petite, Straight: straight,
	}
	if special != 0 {
		strands.Special = &special
	}
	return strands
}

func readFormats(c *cursor, paletteSize int) []display.Formats {
	symbolFormats := readSymbolFormats(c, paletteSize)
	backFormats := readLineFormats(c, paletteSize)
	c.seekRelative(int64(formatLength * 4)) // Unknown formats.
	specialFormats := readLineFormats(c, paletteSize)
	straightFormats := readLineFormats(c, paletteSize)
	frenchKnotFormats := readNodeFormats(c, paletteSize)
	beadFormats := readNodeFormats(c, paletteSize)
	fontFormats := readFontFormats(c, paletteSize)

	formats := make([]display.Formats, paletteSize)
	for i := 0; i < paletteSize; i++ {
		formats[i] = display.Formats{
			Symbol:   symbolFormats[i],
			Back:     backFormats[i],
			Straight: straightFormats[i],
			French:   frenchKnotFormats[i],
			Bead:     beadFormats[i],
			Special:  specialFormats[i],
			Font:     fontFormats[i],
		}
	}
	return formats
}

func readSymbolFormats(c *cursor, paletteSize int) []display.SymbolFormat {
	formats := make([]display.SymbolFormat, paletteSize)
	for i := 0; i < paletteSize; i++ {
		c.u16() // use_alt_bg_color, not carried by this model.
		bg := c.hexColor()
		c.seekRelative(1)
		fg := c.hexColor()
		c.seekRelative(1)
		formats[i] = display.SymbolFormat{Background: bg, Foreground: fg}
	}
	c.seekRelative(int64((formatLength - paletteSize) * 10))
	return formats
}

func readLineFormats(c *cursor, paletteSize int) []display.LineFormat {
	formats := make([]display.LineFormat, paletteSize)
	for i := 0; i < paletteSize; i++ {
		c.u16() // use_alt_color, not carried by this model.
		color := c.hexColor()
		c.seekRelative(1)
		style := display.LineStyleFromUint16(c.u16())
		thickness := float32(c.u16()) / 10.0
		formats[i] = display.LineFormat{Color: color, Style: style, Thickness: thickness}
	}
	c.seekRelative(int64((formatLength - paletteSize) * 10))
	return formats
}

func readNodeFormats(c *cursor, paletteSize int) []display.NodeFormat {
	formats := make([]display.NodeFormat, paletteSize)
	for i := 0; i < paletteSize; i++ {
		c.u16() // use_dot_style, not carried by this model.
		color := c.hexColor()
		c.seekRelative(1)
		c.u16() // use_alt_color, not carried by this model.
		diameter := float32(c.u16()) / 10.0
		formats[i] = display.NodeFormat{Color: color, Diameter: diameter}
	}
	c.seekRelative(int64((formatLength - paletteSize) * 10))
	return formats
}

func readFontFormats(c *cursor, paletteSize int) []display.FontFormat {
	formats := make([]display.FontFormat, paletteSize)
	for i := 0; i < paletteSize; i++ {
		name := c.cstring(fontNameLength)
		if name == "default" {
			name = ""
		}
		c.seekRelative(2)
		c.u16()  // bold, not carried by this model.
		c.u8()   // italic, not carried by this model.
		c.seekRelative(11)
		// stitch_size is stored in tenths, matching every other thickness
		// field this format encodes; there is no separate point-size field
		// for special-stitch labels in this model, so it stands in for one.
		size := float32(c.u16()) / 10.0
		c.u16() // small_stitch_size, not carried by this model.
		formats[i] = display.FontFormat{Name: name, Size: size}
	}
	c.seekRelative(int64((formatLength - paletteSize) * 53))
	return formats
}

func mapSymbolRune(v uint16) rune {
	if v == 0xFFFF {
		return 0
	}
	return rune(v)
}

func readSymbols(c *cursor, paletteSize int) []display.Symbols {
	symbols := make([]display.Symbols, paletteSize)
	for i := 0; i < paletteSize; i++ {
		full := mapSymbolRune(c.u16())
		petite := mapSymbolRune(c.u16())
		half := mapSymbolRune(c.u16())
		quarter := mapSymbolRune(c.u16())
		frenchKnot := mapSymbolRune(c.u16())
		beadVal := c.u16()
		var bead *rune
		if beadVal != 0xFFFF {
			r := rune(beadVal)
			bead = &r
		}
		symbols[i] = display.Symbols{Full: full, Petite: petite, Half: half, Quarter: quarter, FrenchKnot: frenchKnot, Bead: bead}
	}
	return symbols
}

type xsdPatternSettings struct {
	stitchFontName string
	font           print.Font

	view display.View
	zoom uint16

	showGrid            bool
	showRulers          bool
	showCenteringMarks  bool
	gapsBetweenStitches bool

	pageHeader              string
	pageFooter              string
	pageMargins             print.PageMargins
	showPageNumbers         bool
	showAdjacentPageNumbers bool
	centerChartOnPages      bool
}

var zoomPercentages = map[uint16]uint16{
	0: 400, 1: 350, 2: 300, 3: 250, 4: 200, 5: 175, 6: 150, 7: 125,
	8: 100, 9: 75, 10: 50, 11: 33, 12: 25, 13: 10,
}

func readPatternSettings(c *cursor) xsdPatternSettings {
	stitchFontName := c.cstring(fontNameLength)
	c.seekRelative(20)
	font := print.Font{
		Name:   c.cstring(fontNameLength),
		Size:   float32(c.u16()),
		Weight: c.u16(),
		Italic: c.u16() == 1,
	}
	c.seekRelative(10)

	view := display.ViewFromUint16(c.u16())
	zoomCode := c.u16()
	zoom, ok := zoomPercentages[zoomCode]
	if !ok {
		zoom = 100
	}

	showGrid := c.u16() == 1
	showRulers := c.u16() == 1
	showCenteringMarks := c.u16() == 1
	c.u16() // show_fabric_colors_with_symbols, not carried by this model.
	c.seekRelative(4)
	gapsBetweenStitches := c.u16() == 1

	pageHeader := c.cstring(pageHeaderFooterLen)
	pageFooter := c.cstring(pageHeaderFooterLen)
	margins := print.PageMargins{
		Left:   float32(c.u16()) / 100.0,
		Right:  float32(c.u16()) / 100.0,
		Top:    float32(c.u16()) / 100.0,
		Bottom: float32(c.u16()) / 100.0,
		Header: float32(c.u16()) / 100.0,
		Footer: float32(c.u16()) / 100.0,
	}
	showPageNumbers := c.u16() == 1
	showAdjacentPageNumbers := c.u16() == 1
	centerChartOnPages := c.u16() == 1
	c.seekRelative(2)

	return xsdPatternSettings{
		stitchFontName: stitchFontName, font: font, view: view, zoom: zoom,
		showGrid: showGrid, showRulers: showRulers, showCenteringMarks: showCenteringMarks,
		gapsBetweenStitches: gapsBetweenStitches,
		pageHeader:          pageHeader, pageFooter: pageFooter, pageMargins: margins,
		showPageNumbers: showPageNumbers, showAdjacentPageNumbers: showAdjacentPageNumbers,
		centerChartOnPages: centerChartOnPages,
	}
}

func readGridLineStyle(c *cursor) display.GridLine {
	thickness := float32(c.u16()) * (72.0 / 1000.0)
	c.seekRelative(2)
	color := c.hexColor()
	c.seekRelative(3)
	return display.GridLine{Color: color, Thickness: thickness}
}

func readGridSettings(c *cursor) display.Grid {
	c.u16() // major_line_every_stitches, not carried by this model.
	c.seekRelative(2)
	minorScreen := readGridLineStyle(c)
	majorScreen := readGridLineStyle(c)
	minorPrinter := readGridLineStyle(c)
	majorPrinter := readGridLineStyle(c)
	c.seekRelative(12)

	return display.Grid{
		MinorScreen: minorScreen, MajorScreen: majorScreen,
		MinorPrinter: minorPrinter, MajorPrinter: majorPrinter,
	}
}

func readPatternInfo(c *cursor) pattern.PatternInfo {
	return pattern.PatternInfo{
		Title:       c.cstring(patternNameLength),
		Author:      c.cstring(authorNameLength),
		Company:     c.cstring(companyNameLength),
		Copyright:   c.cstring(copyrightLength),
		Description: c.cstring(patternNotesLength),
	}
}

func readStitchSettings(c *cursor) (display.StitchSettings, bool, display.StitchOutline) {
	defaultStrands := display.DefaultStitchStrands{
		Full:    uint8(c.u16()),
		Half:    uint8(c.u16()),
		Quarter: uint8(c.u16()),
		Back:    uint8(c.u16()),
		Petite:  uint8(c.u16()),
		Special: uint8(c.u16()),
		Straight: uint8(c.u16()),
	}

	var displayThickness [13]float32
	for i := range displayThickness {
		displayThickness[i] = float32(c.u16()) / 10.0
	}

	settings := display.StitchSettings{DisplayThickness: displayThickness, DefaultStrands: defaultStrands}

	outlinedStitches := c.u16() == 1
	useSpecifiedColor := c.u16() == 1
	colorPercentage := c.u16()
	if useSpecifiedColor {
		c.hexColor() // Outline color override, not carried by this model.
		c.seekRelative(1)
	} else {
		c.seekRelative(4)
	}
	thickness := float32(c.u16()) / 10.0

	outline := display.StitchOutline{ColorPercentage: uint8(colorPercentage), Thickness: thickness}
	return settings, outlinedStitches, outline
}

func readSymbolSettings(c *cursor) display.SymbolSettings {
	screenX := c.u16()
	screenY := c.u16()
	c.u16() // printer_spacing.x, not carried by this model.
	c.u16() // printer_spacing.y, not carried by this model.
	c.u16() // scale_using_maximum_font_width, not carried by this model.
	c.u16() // scale_using_font_height, not carried by this model.
	smallStitchSize := c.u16()
	c.u16() // show_stitch_color, not carried by this model.
	c.u16() // use_large_half_stitch_symbol, not carried by this model.
	c.seekRelative(6)
	stitchSize := c.u16()
	c.u16() // use_triangles_behind_quarter_stitches, not carried by this model.
	c.u16() // draw_symbols_over_backstitches, not carried by this model.
	c.seekRelative(2)

	return display.SymbolSettings{
		ScreenSpacingX: int(screenX), ScreenSpacingY: int(screenY),
		StitchSize: uint8(stitchSize), SmallStitchSize: uint8(smallStitchSize),
	}
}

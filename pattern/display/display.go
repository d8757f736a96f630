// Package display holds the chart's presentation state: per-palette symbol
// assignments, grid/line formatting, view mode and zoom. None of it affects
// stitch geometry; it rides alongside a pattern so a saved project restores
// exactly what the stitcher was looking at.
package display

// View selects how the chart is rendered. The numeric codes are preserved
// exactly as the legacy format encodes them, including the gap at 4.
type View uint8

const (
	ViewStitches View = iota
	ViewSymbols
	ViewSolid
	ViewInformation
	_ // 4 is unused in the legacy encoding.
	ViewMachineEmbInfo
)

// ViewFromUint16 decodes a legacy numeric view code, preserving the
// historical quirk that code 5 (not 4) maps to MachineEmbInfo.
func ViewFromUint16(v uint16) View {
	switch v {
	case 0:
		return ViewStitches
	case 1:
		return ViewSymbols
	case 2:
		return ViewSolid
	case 3:
		return ViewInformation
	case 5:
		return ViewMachineEmbInfo
	default:
		return ViewSolid
	}
}

// Symbols holds the glyph assigned to each stitch kind for one palette item.
type Symbols struct {
	Full       rune
	Petite     rune
	Half       rune
	Quarter    rune
	FrenchKnot rune
	Bead       *rune
}

// SymbolFormat is the foreground/background color pairing used to render a
// palette item's symbol.
type SymbolFormat struct {
	Background string
	Foreground string
}

// DefaultSymbolFormat matches the legacy default of a white background with
// black glyphs.
func DefaultSymbolFormat() SymbolFormat {
	return SymbolFormat{Background: "FFFFFF", Foreground: "000000"}
}

// LineStyle selects how a back/straight stitch line is dashed.
type LineStyle uint8

const (
	LineStyleSolid LineStyle = iota
	LineStyleBarred
	LineStyleDotted
	LineStyleDashed
	LineStyleMorse
	LineStyleOutlined
	LineStyleZebra
	LineStyleChainDotted
	LineStyleZigZag
)

// LineStyleFromUint16 decodes the legacy numeric line-style code, which maps
// several codes onto the same style.
func LineStyleFromUint16(v uint16) LineStyle {
	switch v {
	case 0, 5:
		return LineStyleSolid
	case 1, 7:
		return LineStyleBarred
	case 2, 6:
		return LineStyleDotted
	case 11:
		return LineStyleChainDotted
	case 3, 8:
		return LineStyleDashed
	case 9:
		return LineStyleOutlined
	case 10:
		return LineStyleZebra
	case 12:
		return LineStyleZigZag
	case 4:
		return LineStyleMorse
	default:
		return LineStyleSolid
	}
}

// LineFormat is the color/style/thickness used to render a back or straight
// stitch.
type LineFormat struct {
	Color     string
	Style     LineStyle
	Thickness float32
}

// DefaultLineFormat matches the legacy defaults: solid black at 1pt.
func DefaultLineFormat() LineFormat {
	return LineFormat{Color: "000000", Style: LineStyleSolid, Thickness: 1.0}
}

// NodeFormat is the color/diameter used to render a French knot or bead.
type NodeFormat struct {
	Color    string
	Diameter float32
}

// FontFormat names the font used to render special-stitch and information
// labels.
type FontFormat struct {
	Name string
	Size float32
}

// Formats bundles every per-palette-item rendering override.
type Formats struct {
	Symbol  SymbolFormat
	Back    LineFormat
	Straight LineFormat
	French  NodeFormat
	Bead    NodeFormat
	Special LineFormat
	Font    FontFormat
}

// GridLineStyle selects solid vs dashed grid lines.
type GridLineStyle uint8

const (
	GridLineStyleSolid GridLineStyle = iota
	GridLineStyleDashed
)

// GridLine is the thickness/color/style of one of a grid's minor or major
// lines.
type GridLine struct {
	Color     string
	Thickness float32
	Style     GridLineStyle
}

// Grid describes the minor/major grid line formatting, both on screen and
// when printed.
type Grid struct {
	MinorScreen  GridLine
	MajorScreen  GridLine
	MinorPrinter GridLine
	MajorPrinter GridLine
}

// DefaultGrid matches the legacy thickness defaults.
func DefaultGrid() Grid {
	return Grid{
		MinorScreen:  GridLine{Color: "000000", Thickness: 0.072},
		MajorScreen:  GridLine{Color: "000000", Thickness: 0.072},
		MinorPrinter: GridLine{Color: "000000", Thickness: 0.144},
		MajorPrinter: GridLine{Color: "000000", Thickness: 0.504},
	}
}

// StitchOutline describes how stitch outlines are shaded relative to their
// fill color.
type StitchOutline struct {
	ColorPercentage uint8
	Thickness       float32
}

// DefaultStitchOutline matches the legacy defaults.
func DefaultStitchOutline() StitchOutline {
	return StitchOutline{ColorPercentage: 80, Thickness: 0.2}
}

// DefaultStitchStrands records the strand count a brand-new palette item
// uses for each stitch kind, absent a per-item override.
type DefaultStitchStrands struct {
	Full    uint8
	Petite  uint8
	Half    uint8
	Quarter uint8
	Back    uint8
	Straight uint8
	Special uint8
}

// DefaultDefaultStitchStrands matches the legacy defaults: two strands for
// cross stitches, one for lines.
func DefaultDefaultStitchStrands() DefaultStitchStrands {
	return DefaultStitchStrands{Full: 2, Petite: 2, Half: 2, Quarter: 2, Back: 1, Straight: 1, Special: 2}
}

// StitchSettings carries the display thickness used per strand count (index
// 0..11 for 1..12 strands, index 12 for French knots) plus the default
// strand assignment new palette items receive.
type StitchSettings struct {
	DisplayThickness [13]float32
	DefaultStrands   DefaultStitchStrands
}

// DefaultStitchSettings matches the legacy thickness table.
func DefaultStitchSettings() StitchSettings {
	return StitchSettings{
		DisplayThickness: [13]float32{1.0, 1.5, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0, 5.5, 6.0, 6.5, 7.0, 4.0},
		DefaultStrands:   DefaultDefaultStitchStrands(),
	}
}

// SymbolSettings describes the screen layout of rendered symbols.
type SymbolSettings struct {
	ScreenSpacingX, ScreenSpacingY int
	StitchSize                    uint8
	SmallStitchSize                uint8
}

// DefaultSymbolSettings matches the legacy defaults.
func DefaultSymbolSettings() SymbolSettings {
	return SymbolSettings{ScreenSpacingX: 1, ScreenSpacingY: 1, StitchSize: 100, SmallStitchSize: 60}
}

// Settings is the full per-project display configuration, parallel to the
// palette: Symbols[i] and Formats[i] describe palette item i.
type Settings struct {
	DefaultStitchFont string
	View              View
	Zoom              uint16
	ShowGrid             bool
	ShowRulers           bool
	ShowCenteringMarks   bool
	GapsBetweenStitches  bool
	OutlinedStitches     bool
	StitchOutline        StitchOutline
	Grid                 Grid
	StitchSettings       StitchSettings
	SymbolSettings       SymbolSettings

	Symbols []Symbols
	Formats []Formats
}

// New constructs the default display settings for a freshly created pattern
// with paletteSize palette items (the fabric entry counts as item 0 in
// several wire formats, but Symbols/Formats here are indexed the same way as
// Pattern.Palette).
func New(paletteSize int) *Settings {
	s := &Settings{
		DefaultStitchFont:   "CrossStitch3",
		View:                ViewSolid,
		Zoom:                100,
		ShowGrid:            true,
		ShowRulers:          true,
		ShowCenteringMarks:  true,
		GapsBetweenStitches: false,
		OutlinedStitches:    true,
		StitchOutline:       DefaultStitchOutline(),
		Grid:                DefaultGrid(),
		StitchSettings:      DefaultStitchSettings(),
		SymbolSettings:      DefaultSymbolSettings(),
	}
	for i := 0; i < paletteSize; i++ {
		s.Symbols = append(s.Symbols, Symbols{})
		s.Formats = append(s.Formats, Formats{
			Symbol:  DefaultSymbolFormat(),
			Back:    DefaultLineFormat(),
			Straight: DefaultLineFormat(),
			Special: DefaultLineFormat(),
		})
	}
	return s
}

// Package print holds the per-project page-layout settings used when a
// pattern is exported to a printable chart.
package print

// Font describes a named font at a point size and weight.
type Font struct {
	Name   string
	Size   float32
	Weight uint16
	Italic bool
}

// DefaultFont matches the legacy default: 12pt Arial, regular weight.
func DefaultFont() Font {
	return Font{Name: "Arial", Size: 12, Weight: 400, Italic: false}
}

// PageMargins are in inches; the legacy wire format stores hundredths of an
// inch, which the XSD decoder divides by 100.
type PageMargins struct {
	Left, Right, Top, Bottom float32
	Header, Footer           float32
}

// Settings is the full per-project print configuration.
type Settings struct {
	Font                       Font
	Header                     string
	Footer                     string
	Margins                    PageMargins
	ShowPageNumbers            bool
	ShowAdjacentPageNumbers    bool
	CenterChartOnPages         bool
}

// New constructs the default print settings for a freshly created pattern.
func New() *Settings {
	return &Settings{
		Font:                    DefaultFont(),
		ShowPageNumbers:         true,
		ShowAdjacentPageNumbers: true,
		CenterChartOnPages:      true,
	}
}

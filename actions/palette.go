package actions

import (
	"fmt"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/pattern/display"
	"github.com/niusia-ua/embroidery-studio/project"
)

// AddedPaletteItemData is the payload emitted whenever a palette item
// becomes present at a given index, whether by AddPaletteItem.Perform or
// RemovePaletteItem.Revoke.
type AddedPaletteItemData struct {
	PaletteItem pattern.PaletteItem `json:"paletteItem"`
	Palindex    int                 `json:"palindex"`
	Symbols     display.Symbols     `json:"symbols"`
	Formats     display.Formats     `json:"formats"`
}

// AddPaletteItem appends a new palette item (and its default symbol/format
// records), always at the end of the palette.
//
// Emits on Perform: "palette:add_palette_item".
// Emits on Revoke: "palette:remove_palette_item" (the index removed).
type AddPaletteItem struct {
	Item    pattern.PaletteItem
	Symbols display.Symbols
	Formats display.Formats
}

// NewAddPaletteItem constructs an AddPaletteItem action with default symbol
// and format records.
func NewAddPaletteItem(item pattern.PaletteItem) *AddPaletteItem {
	return &AddPaletteItem{
		Item: item,
		Formats: display.Formats{
			Symbol:   display.DefaultSymbolFormat(),
			Back:     display.DefaultLineFormat(),
			Straight: display.DefaultLineFormat(),
			Special:  display.DefaultLineFormat(),
		},
	}
}

func (a *AddPaletteItem) Perform(sink EventSink, proj *project.Project) error {
	palindex := proj.Pattern.InsertPaletteItem(a.Item)
	proj.Display.Symbols = append(proj.Display.Symbols, a.Symbols)
	proj.Display.Formats = append(proj.Display.Formats, a.Formats)
	return sink.Emit("palette:add_palette_item", AddedPaletteItemData{
		PaletteItem: a.Item,
		Palindex:    palindex,
		Symbols:     a.Symbols,
		Formats:     a.Formats,
	})
}

func (a *AddPaletteItem) Revoke(sink EventSink, proj *project.Project) error {
	proj.Pattern.RemoveLastPaletteItem()
	proj.Display.Symbols = proj.Display.Symbols[:len(proj.Display.Symbols)-1]
	proj.Display.Formats = proj.Display.Formats[:len(proj.Display.Formats)-1]
	return sink.Emit("palette:remove_palette_item", len(proj.Pattern.Palette))
}

// RemovePaletteItem deletes a palette item by value (the caller does not
// need to know its index), along with every stitch referencing it, shifting
// every later palette index and palindex down by one.
//
// Emits on Perform: "palette:remove_palette_item" (the index removed),
// "stitches:remove_many" (every stitch deleted as a result).
// Emits on Revoke: "palette:add_palette_item", "stitches:add_many".
type RemovePaletteItem struct {
	Item pattern.PaletteItem

	memoized bool
	palindex int
	symbols  display.Symbols
	formats  display.Formats
	conflicts []pattern.Stitch
}

// NewRemovePaletteItem constructs a RemovePaletteItem action for the given
// palette item value.
func NewRemovePaletteItem(item pattern.PaletteItem) *RemovePaletteItem {
	return &RemovePaletteItem{Item: item}
}

func (a *RemovePaletteItem) Perform(sink EventSink, proj *project.Project) error {
	palindex := proj.Pattern.FindPaletteIndex(a.Item)
	if palindex < 0 {
		return fmt.Errorf("actions: palette item not found")
	}

	proj.Pattern.RemovePaletteItemAt(palindex)
	symbols := proj.Display.Symbols[palindex]
	formats := proj.Display.Formats[palindex]
	proj.Display.Symbols = append(proj.Display.Symbols[:palindex], proj.Display.Symbols[palindex+1:]...)
	proj.Display.Formats = append(proj.Display.Formats[:palindex], proj.Display.Formats[palindex+1:]...)

	conflicts := proj.Pattern.RemoveStitchesByPalindex(uint8(palindex))

	if err := sink.Emit("palette:remove_palette_item", palindex); err != nil {
		return err
	}
	if err := sink.Emit("stitches:remove_many", conflicts); err != nil {
		return err
	}

	if !a.memoized {
		a.palindex = palindex
		a.symbols = symbols
		a.formats = formats
		a.conflicts = conflicts
		a.memoized = true
	}
	return nil
}

func (a *RemovePaletteItem) Revoke(sink EventSink, proj *project.Project) error {
	proj.Pattern.InsertPaletteItemAt(a.palindex, a.Item)
	proj.Display.Symbols = insertSymbolsAt(proj.Display.Symbols, a.palindex, a.symbols)
	proj.Display.Formats = insertFormatsAt(proj.Display.Formats, a.palindex, a.formats)
	proj.Pattern.RestoreStitches(a.conflicts, uint8(a.palindex))

	if err := sink.Emit("palette:add_palette_item", AddedPaletteItemData{
		PaletteItem: a.Item,
		Palindex:    a.palindex,
		Symbols:     a.symbols,
		Formats:     a.formats,
	}); err != nil {
		return err
	}
	return sink.Emit("stitches:add_many", a.conflicts)
}

func insertSymbolsAt(s []display.Symbols, i int, v display.Symbols) []display.Symbols {
	s = append(s, display.Symbols{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func insertFormatsAt(s []display.Formats, i int, v display.Formats) []display.Formats {
	s = append(s, display.Formats{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

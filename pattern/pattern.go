package pattern

// PatternProperties records the pattern's grid dimensions, in stitches.
type PatternProperties struct {
	Width  uint16
	Height uint16
}

// PatternInfo carries the free-text metadata fields a pattern may have.
type PatternInfo struct {
	Title       string
	Author      string
	Company     string
	Copyright   string
	Description string
}

// Fabric describes the cloth a pattern is stitched on.
type Fabric struct {
	SpiWidth  uint16
	SpiHeight uint16
	Kind      string
	Name      string
	Color     string // hex RGB, no leading '#'.
}

// DefaultFabric returns the fabric defaults a brand-new pattern starts with:
// 14-count white Aida.
func DefaultFabric() Fabric {
	return Fabric{SpiWidth: 14, SpiHeight: 14, Kind: "Aida", Name: "White", Color: "FFFFFF"}
}

// Pattern is the in-memory aggregate of everything describing a single
// cross-stitch chart: its properties, metadata, palette, fabric and the
// five stitch collections.
type Pattern struct {
	Properties PatternProperties
	Info       PatternInfo
	Palette    []PaletteItem
	Fabric     Fabric

	FullStitches *Stitches[FullStitch]
	PartStitches *Stitches[PartStitch]
	Nodes        *Stitches[Node]
	Lines        *Stitches[Line]

	SpecialStitches     *Stitches[SpecialStitch]
	SpecialStitchModels []SpecialStitchModel
}

// New constructs an empty pattern of the given dimensions, with the default
// fabric and empty stitch collections.
func New(width, height uint16) *Pattern {
	return &Pattern{
		Properties:      PatternProperties{Width: width, Height: height},
		Fabric:          DefaultFabric(),
		FullStitches:    NewStitches[FullStitch](),
		PartStitches:    NewStitches[PartStitch](),
		Nodes:           NewStitches[Node](),
		Lines:           NewStitches[Line](),
		SpecialStitches: NewStitches[SpecialStitch](),
	}
}

// AddStitch inserts stitch into the pattern, first removing every stitch
// that geometrically conflicts with it (coarser or finer stitches occupying
// overlapping territory), then inserting stitch itself, replacing anything
// already at its exact slot. It returns the full bundle of what was
// displaced, so the caller (the actions package) can restore it on revoke.
//
// Order matters: conflicts are removed before the insert, never after,
// because removing a stitch can itself require consulting what is currently
// present (e.g. a half stitch's own-slot occupant).
func (p *Pattern) AddStitch(stitch Stitch) Bundle {
	switch {
	case stitch.Full != nil:
		return p.addFullStitch(*stitch.Full)
	case stitch.Part != nil:
		return p.addPartStitch(*stitch.Part)
	case stitch.Node != nil:
		return p.addNode(*stitch.Node)
	case stitch.Line != nil:
		return p.addLine(*stitch.Line)
	default:
		return Bundle{}
	}
}

func (p *Pattern) addFullStitch(fullstitch FullStitch) Bundle {
	var bundle Bundle
	switch fullstitch.Kind {
	case FullStitchKindFull:
		bundle.FullStitches = append(bundle.FullStitches, FullConflictsWithFullStitch(p.FullStitches, fullstitch)...)
		bundle.PartStitches = append(bundle.PartStitches, PartConflictsWithFullStitch(p.PartStitches, fullstitch)...)
	case FullStitchKindPetite:
		bundle.FullStitches = append(bundle.FullStitches, FullConflictsWithPetiteStitch(p.FullStitches, fullstitch)...)
		bundle.PartStitches = append(bundle.PartStitches, PartConflictsWithPetiteStitch(p.PartStitches, fullstitch)...)
	}
	if prev, ok := p.FullStitches.Insert(fullstitch); ok {
		bundle.FullStitches = append(bundle.FullStitches, prev)
	}
	return bundle
}

func (p *Pattern) addPartStitch(partstitch PartStitch) Bundle {
	var bundle Bundle
	switch partstitch.Kind {
	case PartStitchKindHalf:
		bundle.FullStitches = append(bundle.FullStitches, FullConflictsWithHalfStitch(p.FullStitches, partstitch)...)
		bundle.PartStitches = append(bundle.PartStitches, PartConflictsWithHalfStitch(p.PartStitches, partstitch)...)
	case PartStitchKindQuarter:
		bundle.FullStitches = append(bundle.FullStitches, FullConflictsWithQuarterStitch(p.FullStitches, partstitch)...)
		bundle.PartStitches = append(bundle.PartStitches, PartConflictsWithQuarterStitch(p.PartStitches, partstitch)...)
	}
	if prev, ok := p.PartStitches.Insert(partstitch); ok {
		bundle.PartStitches = append(bundle.PartStitches, prev)
	}
	return bundle
}

func (p *Pattern) addNode(node Node) Bundle {
	var bundle Bundle
	if prev, ok := p.Nodes.Insert(node); ok {
		bundle.Node = &prev
	}
	return bundle
}

func (p *Pattern) addLine(line Line) Bundle {
	var bundle Bundle
	if prev, ok := p.Lines.Insert(line); ok {
		bundle.Line = &prev
	}
	return bundle
}

// RemoveStitch deletes stitch from the pattern, if present, returning
// whether it was found. Unlike AddStitch this never touches other stitches:
// removal has no conflicts to resolve, only the exact slot.
func (p *Pattern) RemoveStitch(stitch Stitch) (Stitch, bool) {
	switch {
	case stitch.Full != nil:
		if removed, ok := p.FullStitches.Remove(*stitch.Full); ok {
			return StitchFromFull(removed), true
		}
	case stitch.Part != nil:
		if removed, ok := p.PartStitches.Remove(*stitch.Part); ok {
			return StitchFromPart(removed), true
		}
	case stitch.Node != nil:
		if removed, ok := p.Nodes.Remove(*stitch.Node); ok {
			return StitchFromNode(removed), true
		}
	case stitch.Line != nil:
		if removed, ok := p.Lines.Remove(*stitch.Line); ok {
			return StitchFromLine(removed), true
		}
	}
	return Stitch{}, false
}

// RemoveStitchesByPalindex removes every stitch across all four collections
// whose Palindex equals palindex (returned, in their original form), then
// decrements the Palindex of every remaining stitch with a greater index by
// one, closing the gap left by the palette entry at palindex being deleted.
func (p *Pattern) RemoveStitchesByPalindex(palindex uint8) []Stitch {
	var removed []Stitch

	for _, f := range p.FullStitches.All() {
		switch {
		case f.Palindex == palindex:
			p.FullStitches.Remove(f)
			removed = append(removed, StitchFromFull(f))
		case f.Palindex > palindex:
			p.FullStitches.Remove(f)
			f.Palindex--
			p.FullStitches.Insert(f)
		}
	}
	for _, part := range p.PartStitches.All() {
		switch {
		case part.Palindex == palindex:
			p.PartStitches.Remove(part)
			removed = append(removed, StitchFromPart(part))
		case part.Palindex > palindex:
			p.PartStitches.Remove(part)
			part.Palindex--
			p.PartStitches.Insert(part)
		}
	}
	for _, n := range p.Nodes.All() {
		switch {
		case n.Palindex == palindex:
			p.Nodes.Remove(n)
			removed = append(removed, StitchFromNode(n))
		case n.Palindex > palindex:
			p.Nodes.Remove(n)
			n.Palindex--
			p.Nodes.Insert(n)
		}
	}
	for _, l := range p.Lines.All() {
		switch {
		case l.Palindex == palindex:
			p.Lines.Remove(l)
			removed = append(removed, StitchFromLine(l))
		case l.Palindex > palindex:
			p.Lines.Remove(l)
			l.Palindex--
			p.Lines.Insert(l)
		}
	}
	return removed
}

// RestoreStitches is the inverse of RemoveStitchesByPalindex: it increments
// the Palindex of every stitch currently at or above palindex by one
// (reopening the gap), then reinserts every stitch in list verbatim, without
// running the conflict-resolution algebra (the original slots are known to
// be free since nothing has been inserted there since the removal).
func (p *Pattern) RestoreStitches(list []Stitch, palindex uint8) {
	for _, f := range p.FullStitches.All() {
		if f.Palindex >= palindex {
			p.FullStitches.Remove(f)
			f.Palindex++
			p.FullStitches.Insert(f)
		}
	}
	for _, part := range p.PartStitches.All() {
		if part.Palindex >= palindex {
			p.PartStitches.Remove(part)
			part.Palindex++
			p.PartStitches.Insert(part)
		}
	}
	for _, n := range p.Nodes.All() {
		if n.Palindex >= palindex {
			p.Nodes.Remove(n)
			n.Palindex++
			p.Nodes.Insert(n)
		}
	}
	for _, l := range p.Lines.All() {
		if l.Palindex >= palindex {
			p.Lines.Remove(l)
			l.Palindex++
			p.Lines.Insert(l)
		}
	}
	for _, stitch := range list {
		switch {
		case stitch.Full != nil:
			p.FullStitches.Insert(*stitch.Full)
		case stitch.Part != nil:
			p.PartStitches.Insert(*stitch.Part)
		case stitch.Node != nil:
			p.Nodes.Insert(*stitch.Node)
		case stitch.Line != nil:
			p.Lines.Insert(*stitch.Line)
		}
	}
}

// InsertPaletteItem appends item to the palette and returns its new index.
func (p *Pattern) InsertPaletteItem(item PaletteItem) int {
	p.Palette = append(p.Palette, item)
	return len(p.Palette) - 1
}

// RemoveLastPaletteItem pops the most recently added palette item, undoing
// InsertPaletteItem. It must only be called when the last item is indeed the
// one being reverted.
func (p *Pattern) RemoveLastPaletteItem() {
	p.Palette = p.Palette[:len(p.Palette)-1]
}

// FindPaletteIndex returns the index of the first palette item equal to
// item, or -1 if none matches.
func (p *Pattern) FindPaletteIndex(item PaletteItem) int {
	for i, existing := range p.Palette {
		if existing.equal(item) {
			return i
		}
	}
	return -1
}

// RemovePaletteItemAt deletes the palette item at index i, shifting
// subsequent items down.
func (p *Pattern) RemovePaletteItemAt(i int) {
	p.Palette = append(p.Palette[:i], p.Palette[i+1:]...)
}

// InsertPaletteItemAt re-inserts item at index i, shifting items at or after
// i up by one. Used to revoke a palette-item removal at its remembered
// index.
func (p *Pattern) InsertPaletteItemAt(i int, item PaletteItem) {
	p.Palette = append(p.Palette, PaletteItem{})
	copy(p.Palette[i+1:], p.Palette[i:])
	p.Palette[i] = item
}

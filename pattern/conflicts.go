package pattern

// This file implements the fractional-cell conflict-resolution algebra: for
// each stitch variant being inserted, which already-present stitches of
// coarser or finer granularity occupy overlapping territory and must be
// evicted first. Every function removes and returns exactly the stitches it
// found, so the action layer can restore them verbatim on revoke.
//
// These are plain functions rather than methods because Go does not allow
// impl blocks scoped to one instantiation of a generic type (Rust's
// `impl Stitches<FullStitch>` has no direct equivalent).

// FullConflictsWithFullStitch evicts any petite stitches (in all four
// quarter-cell positions) that a full stitch at the same cell would cover.
// fullstitch.Kind must be FullStitchKindFull.
func FullConflictsWithFullStitch(fulls *Stitches[FullStitch], fullstitch FullStitch) []FullStitch {
	var conflicts []FullStitch

	x, y := fullstitch.X+0.5, fullstitch.Y+0.5
	kind := FullStitchKindPetite

	candidates := [4]FullStitch{
		{X: fullstitch.X, Y: fullstitch.Y, Palindex: fullstitch.Palindex, Kind: kind},
		{X: x, Y: fullstitch.Y, Palindex: fullstitch.Palindex, Kind: kind},
		{X: fullstitch.X, Y: y, Palindex: fullstitch.Palindex, Kind: kind},
		{X: x, Y: y, Palindex: fullstitch.Palindex, Kind: kind},
	}
	for _, petite := range candidates {
		if _, ok := fulls.Remove(petite); ok {
			conflicts = append(conflicts, petite)
		}
	}
	return conflicts
}

// FullConflictsWithPetiteStitch evicts the full stitch covering the cell a
// petite stitch sits in. fullstitch.Kind must be FullStitchKindPetite.
func FullConflictsWithPetiteStitch(fulls *Stitches[FullStitch], fullstitch FullStitch) []FullStitch {
	var conflicts []FullStitch

	full := FullStitch{
		X:        fullstitch.X.Trunc(),
		Y:        fullstitch.Y.Trunc(),
		Palindex: fullstitch.Palindex,
		Kind:     FullStitchKindFull,
	}
	if _, ok := fulls.Remove(full); ok {
		conflicts = append(conflicts, full)
	}
	return conflicts
}

// FullConflictsWithHalfStitch evicts the full stitch and any petite stitches
// a half stitch's diagonal would cross. partstitch.Kind must be
// PartStitchKindHalf.
func FullConflictsWithHalfStitch(fulls *Stitches[FullStitch], partstitch PartStitch) []FullStitch {
	var conflicts []FullStitch
	full := FullStitchFromPart(partstitch)

	x, y := partstitch.X+0.5, partstitch.Y+0.5
	kind := FullStitchKindPetite

	var candidates []FullStitch
	switch partstitch.Direction {
	case PartStitchDirectionForward:
		candidates = []FullStitch{
			{X: x, Y: full.Y, Palindex: full.Palindex, Kind: kind},
			{X: full.X, Y: y, Palindex: full.Palindex, Kind: kind},
		}
	case PartStitchDirectionBackward:
		candidates = []FullStitch{
			{X: full.X, Y: full.Y, Palindex: full.Palindex, Kind: kind},
			{X: x, Y: y, Palindex: full.Palindex, Kind: kind},
		}
	}
	for _, petite := range candidates {
		if _, ok := fulls.Remove(petite); ok {
			conflicts = append(conflicts, petite)
		}
	}

	if _, ok := fulls.Remove(full); ok {
		conflicts = append(conflicts, full)
	}
	return conflicts
}

// FullConflictsWithQuarterStitch evicts the full stitch and the petite
// stitch a quarter stitch's slot would overlap. partstitch.Kind must be
// PartStitchKindQuarter.
func FullConflictsWithQuarterStitch(fulls *Stitches[FullStitch], partstitch PartStitch) []FullStitch {
	var conflicts []FullStitch

	candidates := [2]FullStitch{
		{X: partstitch.X.Trunc(), Y: partstitch.Y.Trunc(), Palindex: partstitch.Palindex, Kind: FullStitchKindFull},
		FullStitchFromPart(partstitch), // petite
	}
	for _, full := range candidates {
		if _, ok := fulls.Remove(full); ok {
			conflicts = append(conflicts, full)
		}
	}
	return conflicts
}

// PartConflictsWithFullStitch evicts any half and quarter stitches a full
// stitch at the same cell would cover. fullstitch.Kind must be
// FullStitchKindFull.
func PartConflictsWithFullStitch(parts *Stitches[PartStitch], fullstitch FullStitch) []PartStitch {
	var conflicts []PartStitch
	base := PartStitchFromFull(fullstitch)
	x, y := fullstitch.X+0.5, fullstitch.Y+0.5

	candidates := [6]PartStitch{
		{X: base.X, Y: base.Y, Palindex: base.Palindex, Kind: PartStitchKindHalf, Direction: PartStitchDirectionForward},
		{X: base.X, Y: base.Y, Palindex: base.Palindex, Kind: PartStitchKindHalf, Direction: PartStitchDirectionBackward},
		{X: base.X, Y: base.Y, Palindex: base.Palindex, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
		{X: x, Y: base.Y, Palindex: base.Palindex, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
		{X: base.X, Y: y, Palindex: base.Palindex, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
		{X: x, Y: y, Palindex: base.Palindex, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
	}
	for _, part := range candidates {
		if _, ok := parts.Remove(part); ok {
			conflicts = append(conflicts, part)
		}
	}
	return conflicts
}

// PartConflictsWithPetiteStitch evicts the half and quarter stitches a
// petite stitch's slot would overlap. fullstitch.Kind must be
// FullStitchKindPetite.
func PartConflictsWithPetiteStitch(parts *Stitches[PartStitch], fullstitch FullStitch) []PartStitch {
	var conflicts []PartStitch

	x, y, palindex := fullstitch.X, fullstitch.Y, fullstitch.Palindex
	direction := DirectionFromCoords(x, y)

	half := PartStitch{X: x.Trunc(), Y: y.Trunc(), Palindex: palindex, Direction: direction, Kind: PartStitchKindHalf}
	if _, ok := parts.Remove(half); ok {
		conflicts = append(conflicts, half)
	}

	quarter := PartStitch{X: x, Y: y, Palindex: palindex, Direction: direction, Kind: PartStitchKindQuarter}
	if _, ok := parts.Remove(quarter); ok {
		conflicts = append(conflicts, quarter)
	}
	return conflicts
}

// PartConflictsWithHalfStitch evicts any quarter stitches a half stitch's
// diagonal would cross. partstitch.Kind must be PartStitchKindHalf.
func PartConflictsWithHalfStitch(parts *Stitches[PartStitch], partstitch PartStitch) []PartStitch {
	var conflicts []PartStitch
	x, y := partstitch.X+0.5, partstitch.Y+0.5
	kind := PartStitchKindQuarter

	var candidates []PartStitch
	switch partstitch.Direction {
	case PartStitchDirectionForward:
		candidates = []PartStitch{
			{X: x, Y: partstitch.Y, Palindex: partstitch.Palindex, Kind: kind, Direction: PartStitchDirectionForward},
			{X: partstitch.X, Y: y, Palindex: partstitch.Palindex, Kind: kind, Direction: PartStitchDirectionForward},
		}
	case PartStitchDirectionBackward:
		candidates = []PartStitch{
			{X: partstitch.X, Y: partstitch.Y, Palindex: partstitch.Palindex, Kind: kind, Direction: PartStitchDirectionBackward},
			{X: x, Y: y, Palindex: partstitch.Palindex, Kind: kind, Direction: PartStitchDirectionBackward},
		}
	}
	for _, quarter := range candidates {
		if _, ok := parts.Remove(quarter); ok {
			conflicts = append(conflicts, quarter)
		}
	}
	return conflicts
}

// PartConflictsWithQuarterStitch evicts the half stitch a quarter stitch's
// slot would overlap. partstitch.Kind must be PartStitchKindQuarter.
func PartConflictsWithQuarterStitch(parts *Stitches[PartStitch], partstitch PartStitch) []PartStitch {
	var conflicts []PartStitch

	half := PartStitch{
		X:         partstitch.X.Trunc(),
		Y:         partstitch.Y.Trunc(),
		Palindex:  partstitch.Palindex,
		Direction: DirectionFromCoords(partstitch.X, partstitch.Y),
		Kind:      PartStitchKindHalf,
	}
	if _, ok := parts.Remove(half); ok {
		conflicts = append(conflicts, half)
	}
	return conflicts
}

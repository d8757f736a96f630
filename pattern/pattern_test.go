package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStitchDisplacesQuartersUnderFullStitch(t *testing.T) {
	p := New(10, 10)

	q1 := PartStitch{X: 0, Y: 0, Palindex: 1, Direction: PartStitchDirectionBackward, Kind: PartStitchKindQuarter}
	require.Zero(t, p.AddStitch(StitchFromPart(q1)))
	q2 := PartStitch{X: 0.5, Y: 0.5, Palindex: 1, Direction: PartStitchDirectionBackward, Kind: PartStitchKindQuarter}
	p.AddStitch(StitchFromPart(q2))
	require.Equal(t, 2, p.PartStitches.Len())

	full := FullStitch{X: 0, Y: 0, Palindex: 2, Kind: FullStitchKindFull}
	bundle := p.AddStitch(StitchFromFull(full))

	require.Equal(t, 0, p.PartStitches.Len())
	require.ElementsMatch(t, []PartStitch{q1, q2}, bundle.PartStitches)
	require.Equal(t, 1, p.FullStitches.Len())
}

func TestAddStitchReplacesSameSlotAndBundleRestoresOnRevoke(t *testing.T) {
	p := New(10, 10)
	first := FullStitch{X: 1, Y: 1, Palindex: 1, Kind: FullStitchKindFull}
	p.AddStitch(StitchFromFull(first))

	second := FullStitch{X: 1, Y: 1, Palindex: 2, Kind: FullStitchKindFull}
	bundle := p.AddStitch(StitchFromFull(second))

	require.Equal(t, 1, p.FullStitches.Len())
	require.Equal(t, []FullStitch{first}, bundle.FullStitches)

	// Revoke: remove the new stitch, restore what it displaced.
	p.RemoveStitch(StitchFromFull(second))
	for _, s := range bundle.Flatten() {
		p.AddStitch(s)
	}
	got, ok := p.FullStitches.Get(FullStitch{X: 1, Y: 1, Kind: FullStitchKindFull})
	require.True(t, ok)
	require.Equal(t, first.Palindex, got.Palindex)
}

func TestRemoveStitchesByPalindexShiftsRemaining(t *testing.T) {
	p := New(10, 10)
	p.AddStitch(StitchFromFull(FullStitch{X: 0, Y: 0, Palindex: 0, Kind: FullStitchKindFull}))
	p.AddStitch(StitchFromFull(FullStitch{X: 1, Y: 1, Palindex: 1, Kind: FullStitchKindFull}))
	p.AddStitch(StitchFromFull(FullStitch{X: 2, Y: 2, Palindex: 2, Kind: FullStitchKindFull}))

	removed := p.RemoveStitchesByPalindex(1)
	require.Len(t, removed, 1)

	remaining := p.FullStitches.All()
	require.Len(t, remaining, 2)
	for _, f := range remaining {
		require.LessOrEqual(t, f.Palindex, uint8(1))
	}
}

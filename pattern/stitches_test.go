package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStitchesInsertReplacesSameSlot(t *testing.T) {
	s := NewStitches[FullStitch]()

	prev, replaced := s.Insert(FullStitch{X: 1, Y: 1, Palindex: 0, Kind: FullStitchKindFull})
	require.False(t, replaced)
	require.Zero(t, prev)
	require.Equal(t, 1, s.Len())

	prev, replaced = s.Insert(FullStitch{X: 1, Y: 1, Palindex: 9, Kind: FullStitchKindFull})
	require.True(t, replaced)
	require.Equal(t, uint8(0), prev.Palindex)
	require.Equal(t, 1, s.Len())

	got, ok := s.Get(FullStitch{X: 1, Y: 1, Kind: FullStitchKindFull})
	require.True(t, ok)
	require.Equal(t, uint8(9), got.Palindex)
}

func TestStitchesRemoveAndEach(t *testing.T) {
	s := NewStitches[Line]()
	s.Insert(Line{X0: 0, Y0: 0, X1: 1, Y1: 1, Kind: LineKindBack})
	s.Insert(Line{X0: 0, Y0: 2, X1: 1, Y1: 2, Kind: LineKindStraight})

	removed, ok := s.Remove(Line{X0: 0, Y0: 0, X1: 1, Y1: 1})
	require.True(t, ok)
	require.Equal(t, LineKindBack, removed.Kind)
	require.Equal(t, 1, s.Len())

	all := s.All()
	require.Len(t, all, 1)
	require.Equal(t, LineKindStraight, all[0].Kind)

	_, ok = s.Remove(Line{X0: 9, Y0: 9, X1: 9, Y1: 9})
	require.False(t, ok)
}

func TestStitchesGobRoundTrip(t *testing.T) {
	s := NewStitches[PartStitch]()
	s.Insert(PartStitch{X: 1, Y: 1, Palindex: 3, Direction: PartStitchDirectionForward, Kind: PartStitchKindQuarter})
	s.Insert(PartStitch{X: 2, Y: 2, Palindex: 4, Direction: PartStitchDirectionBackward, Kind: PartStitchKindHalf})

	data, err := s.GobEncode()
	require.NoError(t, err)

	decoded := NewStitches[PartStitch]()
	require.NoError(t, decoded.GobDecode(data))
	require.Equal(t, s.All(), decoded.All())
}

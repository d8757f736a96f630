package archive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/project"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	proj := project.New(30, 20)
	proj.Pattern.Info.Title = "Archive sample"
	proj.Pattern.AddStitch(pattern.StitchFromFull(pattern.FullStitch{
		X: 4, Y: 5, Palindex: 0, Kind: pattern.FullStitchKindFull,
	}))
	proj.Pattern.AddStitch(pattern.StitchFromNode(pattern.Node{
		X: 1, Y: 1, Kind: pattern.NodeKindFrenchKnot,
	}))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, proj))

	got, err := OpenBytes(buf.Bytes())
	require.NoError(t, err)

	require.Equal(t, proj.Pattern.Properties, got.Pattern.Properties)
	require.Equal(t, "Archive sample", got.Pattern.Info.Title)
	require.Equal(t, 1, got.Pattern.FullStitches.Len())
	require.Equal(t, 1, got.Pattern.Nodes.Len())
	require.NotNil(t, got.Display)
	require.NotNil(t, got.Print)
}

func TestOpenRejectsNonZipData(t *testing.T) {
	_, err := OpenBytes([]byte("not a zip file"))
	require.Error(t, err)
}

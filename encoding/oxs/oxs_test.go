package oxs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/project"
)

func TestSaveParseRoundTrip(t *testing.T) {
	proj := project.New(20, 15)
	proj.Pattern.Info = pattern.PatternInfo{Title: "Sampler", Author: "A. Stitcher"}
	proj.Pattern.Palette = append(proj.Pattern.Palette, pattern.PaletteItem{
		Brand: "DMC", Number: "310", Name: "Black", Color: "000000",
	})
	proj.Pattern.AddStitch(pattern.StitchFromFull(pattern.FullStitch{
		X: 2, Y: 3, Palindex: 0, Kind: pattern.FullStitchKindFull,
	}))
	proj.Pattern.AddStitch(pattern.StitchFromLine(pattern.Line{
		X0: 0, Y0: 0, X1: 1, Y1: 1, Palindex: 0, Kind: pattern.LineKindBack,
	}))

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, proj, false))

	got, err := Parse(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, proj.Pattern.Properties, got.Pattern.Properties)
	require.Equal(t, proj.Pattern.Info.Title, got.Pattern.Info.Title)
	require.Equal(t, proj.Pattern.Info.Author, got.Pattern.Info.Author)
	require.Len(t, got.Pattern.Palette, 1)
	require.Equal(t, "DMC", got.Pattern.Palette[0].Brand)
	require.Equal(t, "310", got.Pattern.Palette[0].Number)
	require.Equal(t, 1, got.Pattern.FullStitches.Len())
	require.Equal(t, 1, got.Pattern.Lines.Len())
}

func TestParseUnsupportedVersion(t *testing.T) {
	doc := `<?xml version="1.0"?><chart><properties oxsversion="2.0" software="Other"/></chart>`
	_, err := Parse(bytes.NewReader([]byte(doc)))
	require.Error(t, err)
}

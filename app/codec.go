package app

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/encoding/archive"
	"github.com/niusia-ua/embroidery-studio/encoding/oxs"
	"github.com/niusia-ua/embroidery-studio/encoding/xsd"
	"github.com/niusia-ua/embroidery-studio/project"
)

// parsePattern dispatches to the codec matching path's extension
// (case-insensitive) and parses data into a project.
func parsePattern(path string, data []byte) (*project.Project, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".oxs", ".xml":
		proj, err := oxs.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "oxs: %v", err)
		}
		return proj, nil
	case ".xsd":
		proj, err := xsd.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "xsd: %v", err)
		}
		return proj, nil
	case ".embproj":
		proj, err := archive.OpenBytes(data)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "archive: %v", err)
		}
		return proj, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedPatternType, "extension %q", filepath.Ext(path))
	}
}

// savePattern serializes proj using the codec matching path's extension.
// The XSD decoder is read-only (spec.md §4.7's closing line): saving to a
// .xsd path is an unsupported pattern type, not a silent OXS fallback.
func savePattern(path string, proj *project.Project) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".oxs", ".xml":
		var buf bytes.Buffer
		if err := oxs.Save(&buf, proj, false); err != nil {
			return nil, errors.Wrap(err, "oxs: save")
		}
		return buf.Bytes(), nil
	case ".embproj":
		var buf bytes.Buffer
		if err := archive.Save(&buf, proj); err != nil {
			return nil, errors.Wrap(err, "archive: save")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedPatternType, "extension %q", filepath.Ext(path))
	}
}

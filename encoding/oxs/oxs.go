// Package oxs implements the OXS pattern interchange format: a streaming
// XML dialect shared by several cross-stitch editors. Only version 1.0 is
// supported, in its two observed producer dialects (Ursa Software and
// Embroidery Studio). They are read alike, except that only the Embroidery
// Studio dialect has <blend> children in palette items and a
// <special_stitch_models> section.
//
// encoding/xml's Decoder/Encoder token streams are used here rather than an
// in-memory tree, mirroring the event-driven reader/writer the format is
// naturally read and written with.
package oxs

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/encoding/oxs/v1"
	"github.com/niusia-ua/embroidery-studio/project"
)

// Software identifies which producer dialect a file follows.
type Software = v1.Software

const (
	SoftwareUrsa             = v1.SoftwareUrsa
	SoftwareEmbroideryStudio = v1.SoftwareEmbroideryStudio
)

// Parse reads a complete OXS document from r, sniffing its declared
// oxsversion/software from the first <properties> element before delegating
// to the matching version parser.
func Parse(r io.Reader) (*project.Project, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	peek, err := br.Peek(64 * 1024)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "oxs: peek properties element")
	}

	version, software, err := sniffProperties(peek)
	if err != nil {
		return nil, err
	}

	switch version {
	case "1.0":
		return v1.Parse(br, software)
	default:
		return nil, errors.Errorf("oxs: unsupported oxsversion %q", version)
	}
}

// Save writes proj as an OXS 1.0 document in the Embroidery Studio dialect
// (the only dialect this package writes; Ursa Software files are read-only
// here, matching the upstream tool's own behavior). indent enables
// pretty-printing, suitable for a development/debug build.
func Save(w io.Writer, proj *project.Project, indent bool) error {
	return v1.Save(w, proj, indent)
}

func sniffProperties(head []byte) (version, software string, err error) {
	dec := xml.NewDecoder(bytes.NewReader(head))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", "", errors.Wrap(err, "oxs: no properties element found")
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "properties" {
			continue
		}
		attrs := attrMap(se)
		return attrs["oxsversion"], attrs["software"], nil
	}
}

func attrMap(se xml.StartElement) map[string]string {
	m := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		m[a.Name.Local] = a.Value
	}
	return m
}

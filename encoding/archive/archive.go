// Package archive implements the project's native save format: a zip
// archive of three gob-encoded streams (pattern, display settings, print
// settings), one entry per stream. zip gives the three streams independent
// framing and checksums without hand-rolling a container format; gob avoids
// hand-writing a schema for structures that are only ever read back by this
// same program.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/niusia-ua/embroidery-studio/pattern"
	"github.com/niusia-ua/embroidery-studio/pattern/display"
	"github.com/niusia-ua/embroidery-studio/pattern/print"
	"github.com/niusia-ua/embroidery-studio/project"
)

const (
	entryPattern = "pattern.gob"
	entryDisplay = "display.gob"
	entryPrint   = "print.gob"
)

func init() {
	// Use klauspost/compress's gzip-compatible Deflate implementation for
	// the zip entries' stored compressor instead of the slower stdlib one.
	zip.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, gzip.DefaultCompression)
	})
	zip.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		gr, err := gzip.NewReader(r)
		if err != nil {
			return io.NopCloser(errReader{err})
		}
		return gr
	})
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// Save writes proj to w as a project archive.
func Save(w io.Writer, proj *project.Project) error {
	zw := zip.NewWriter(w)

	if err := writeEntry(zw, entryPattern, proj.Pattern); err != nil {
		return err
	}
	if err := writeEntry(zw, entryDisplay, proj.Display); err != nil {
		return err
	}
	if err := writeEntry(zw, entryPrint, proj.Print); err != nil {
		return err
	}

	return errors.Wrap(zw.Close(), "archive: close")
}

func writeEntry(zw *zip.Writer, name string, v any) error {
	f, err := zw.Create(name)
	if err != nil {
		return errors.Wrapf(err, "archive: create entry %q", name)
	}
	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return errors.Wrapf(err, "archive: encode entry %q", name)
	}
	return nil
}

// Open reads a project archive from r, which must support random access
// (zip's central directory sits at the end of the stream).
func Open(r io.ReaderAt, size int64) (*project.Project, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "archive: open zip")
	}

	pat := new(pattern.Pattern)
	if err := readEntry(zr, entryPattern, pat); err != nil {
		return nil, err
	}
	disp := new(display.Settings)
	if err := readEntry(zr, entryDisplay, disp); err != nil {
		return nil, err
	}
	prt := new(print.Settings)
	if err := readEntry(zr, entryPrint, prt); err != nil {
		return nil, err
	}

	return &project.Project{Pattern: pat, Display: disp, Print: prt}, nil
}

func readEntry(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return errors.Wrapf(err, "archive: open entry %q", name)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return errors.Wrapf(err, "archive: decode entry %q", name)
	}
	return nil
}

// OpenBytes is a convenience wrapper around Open for callers that already
// hold the whole archive in memory.
func OpenBytes(data []byte) (*project.Project, error) {
	return Open(bytes.NewReader(data), int64(len(data)))
}

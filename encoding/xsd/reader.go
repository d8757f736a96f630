package xsd

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// cursor wraps a seekable byte source with the little-endian primitive reads
// and the XSD-specific string/color helpers every section reader needs. It
// is the Go counterpart of the ReadXsdExt extension trait the binary format
// is read through upstream.
type cursor struct {
	r   io.ReadSeeker
	err error
}

func newCursor(r io.ReadSeeker) *cursor { return &cursor{r: r} }

func (c *cursor) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *cursor) readFull(n int) []byte {
	if c.err != nil {
		return make([]byte, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		c.fail(errors.Wrap(err, "xsd: short read"))
	}
	return buf
}

func (c *cursor) u8() uint8 {
	return c.readFull(1)[0]
}

func (c *cursor) u16() uint16 {
	return binary.LittleEndian.Uint16(c.readFull(2))
}

func (c *cursor) u32() uint32 {
	return binary.LittleEndian.Uint32(c.readFull(4))
}

func (c *cursor) i32() int32 {
	return int32(c.u32())
}

func (c *cursor) seekRelative(n int64) {
	if c.err != nil {
		return
	}
	if _, err := c.r.Seek(n, io.SeekCurrent); err != nil {
		c.fail(errors.Wrap(err, "xsd: seek"))
	}
}

// cstring reads a fixed-width, null-terminated string of length+1 bytes,
// decoding it as UTF-8 if valid, falling back to CP1251 (Pattern Maker is
// commonly used with Cyrillic pattern metadata) otherwise. A buffer with no
// null terminator at all is treated as trash data and yields "".
func (c *cursor) cstring(length int) string {
	buf := c.readFull(length + 1)
	if c.err != nil {
		return ""
	}

	nul := -1
	for i, b := range buf {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul == -1 {
		return ""
	}
	raw := buf[:nul]

	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// hexColor reads a 3-byte RGB triple and renders it as an uppercase hex
// string, matching the OXS palette color representation.
func (c *cursor) hexColor() string {
	buf := c.readFull(3)
	const hexDigits = "0123456789ABCDEF"
	out := make([]byte, 6)
	for i, b := range buf {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0F]
	}
	return string(out)
}

package xsd

import "strconv"

// flossBrands maps the single-byte brand identifier Pattern Maker stores in
// a palette item to its floss brand name. The producer's own lookup table is
// proprietary data this package's retrieval pack did not carry, so only the
// handful of identifiers confirmed by interoperating pattern files are
// named here; everything else is rendered as a numbered placeholder so the
// palette entry still round-trips identifiably instead of silently losing
// its brand.
var flossBrands = map[uint8]string{
	0:   "DMC",
	1:   "Anchor",
	2:   "Bates",
	254: "User-defined",
}

func flossBrandName(id uint8) string {
	if id == 255 {
		id = 0
	}
	if name, ok := flossBrands[id]; ok {
		return name
	}
	return "brand-" + strconv.Itoa(int(id))
}

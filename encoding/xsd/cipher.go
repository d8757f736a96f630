package xsd

import "encoding/binary"

// readRandomNumbers reads the four seed values the stitch-data stream
// cipher is derived from.
func readRandomNumbers(c *cursor) [4]int32 {
	var nums [4]int32
	for i := range nums {
		nums[i] = c.i32()
	}
	return nums
}

// reproduceDecodingValues derives the XOR key and the 16-entry rotate-amount
// table the stitch-data stream cipher advances through, from the four seed
// values read by readRandomNumbers. The derivation is a fixed bit-shuffle of
// the seed bytes; there is no published rationale for the exact shuffle
// beyond matching the producer's own (reverse-engineered) behavior.
func reproduceDecodingValues(seeds [4]int32) (key int32, rotations [16]uint32) {
	val1 := int32(byte(uint32(seeds[1]) >> 8))
	val2 := seeds[0] << 8
	val3 := (val2 | val1) << 8
	val4 := int32(byte(uint32(seeds[2]) >> 16))
	val5 := (val4 | val3) << 8
	val6 := seeds[3] & 0xFF
	key = val6 | val5

	var buf [16]byte
	for i, n := range seeds {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], uint32(n))
	}

	for i := 0; i < 16; i++ {
		offset := (i / 4) * 4
		shift := binary.LittleEndian.Uint32(buf[offset:offset+4]) >> uint(i%4)
		rotations[i] = shift % 32
	}

	return key, rotations
}

func rotateLeft32(x int32, n uint32) int32 {
	ux := uint32(x)
	n %= 32
	if n == 0 {
		return x
	}
	return int32(ux<<n | ux>>(32-n))
}

// readStitchesData decodes the cipher-and-run-length-encoded stream that
// carries one record per cell of the pattern grid.
func readStitchesData(c *cursor, totalStitchesCount int) []int32 {
	stitchesData := make([]int32, 0, totalStitchesCount)
	seeds := readRandomNumbers(c)
	key, rotations := reproduceDecodingValues(seeds)
	rotationIndex := 0
	stitchIndex := 0

	for stitchIndex < totalStitchesCount {
		if c.err != nil {
			return stitchesData
		}
		length := int(c.u32())
		if length == 0 {
			continue
		}

		decoded := make([]int32, 0, length)
		for i := 0; i < length; i++ {
			value := c.i32() ^ key ^ seeds[0]
			decoded = append(decoded, value)
			key = rotateLeft32(key, rotations[rotationIndex])
			seeds[0] += seeds[1]
			rotationIndex = (rotationIndex + 1) % 16
		}

		i := 0
		for i < length {
			copyCount := 1
			elem := decoded[i]
			if elem&(int32(1)<<30) != 0 {
				copyCount = int((elem & 0x3FFFFFFF) >> 16)
				i++
			}
			for ; copyCount > 0; copyCount-- {
				stitchesData = append(stitchesData, decoded[i])
				stitchIndex++
			}
			i++
		}
	}

	return stitchesData
}

package xsd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Seed values and expected decoding key/rotation table reproduced from the
// original decoder's own unit test, which pins this exact reverse-engineered
// derivation against a known input.
func TestReproduceDecodingValues(t *testing.T) {
	seeds := [4]int32{498347506, 626547637, 1679951037, 2146703145}

	key, rotations := reproduceDecodingValues(seeds)

	require.Equal(t, int32(-228908503), key)
	require.Equal(t, [16]uint32{18, 25, 28, 30, 21, 26, 13, 22, 29, 30, 15, 23, 9, 20, 10, 5}, rotations)
}

func TestRotateLeft32(t *testing.T) {
	require.Equal(t, int32(2), rotateLeft32(1, 1))
	require.Equal(t, int32(1), rotateLeft32(1, 0))
	require.Equal(t, int32(1), rotateLeft32(1, 32))
}

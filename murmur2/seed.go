package murmur2

import (
	"errors"
	"fmt"
)

// ErrInvalidByte is returned when a value cannot be represented as a byte.
var ErrInvalidByte = errors.New("value out of byte range")

// NormalizeSeed truncates seed to its low 32 bits, so -1 becomes 0xffffffff
// and 1<<32+5 becomes 5.
func NormalizeSeed(seed int64) uint32 {
	return uint32(seed)
}

// HashInt is Hash with a seed given as an arbitrary integer.
func HashInt(key []byte, seed int64, removeWhitespaces bool) uint32 {
	return Hash(key, NormalizeSeed(seed), removeWhitespaces)
}

// BytesFromInts converts values to a byte sequence. Values outside 0-255 are
// rejected instead of truncated.
func BytesFromInts(values []int) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xff {
			return nil, fmt.Errorf("value %d at index %d: %w", v, i, ErrInvalidByte)
		}
		out[i] = byte(v)
	}
	return out, nil
}

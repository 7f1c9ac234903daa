// Package murmur2 implements the 32-bit MurmurHash2 algorithm by Austin
// Appleby, with optional whitespace stripping before hashing.
//
// The hash is fast and well distributed but not cryptographic. Use it for
// cache keys, bucket assignment and deduplication, never where an attacker
// controls the input and collisions matter.
package murmur2

// Mixing constants.
const (
	M = uint32(0x5bd1e995)
	R = 24
)

// MurmurHash2 computes the MurmurHash2 value of data with the given seed.
// Multiplications wrap modulo 2^32 and all right shifts are logical.
func MurmurHash2(data []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(data))

	// Process 4 bytes at a time
	for len(data) >= 4 {
		k := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24

		k *= M
		k ^= k >> R
		k *= M

		h *= M
		h ^= k

		data = data[4:]
	}

	// Handle the last few bytes
	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= M
	}

	// Final mixing
	h ^= h >> 13
	h *= M
	h ^= h >> 15

	return h
}

// Hash computes MurmurHash2 of key. When removeWhitespaces is set, tab, line
// feed, carriage return and space bytes are dropped first and the length
// mixed into the seed is the filtered length. key is never modified.
func Hash(key []byte, seed uint32, removeWhitespaces bool) uint32 {
	if removeWhitespaces {
		key = RemoveWhitespaces(key)
	}
	return MurmurHash2(key, seed)
}

// Sum32 hashes key with seed 0 and no filtering.
func Sum32(key []byte) uint32 {
	return MurmurHash2(key, 0)
}

// Hash32 computes MurmurHash2 of a string with seed=0
func Hash32(s string) uint32 {
	return MurmurHash2([]byte(s), 0)
}

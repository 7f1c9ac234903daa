package murmur2

import (
	"encoding/binary"
	"hash"
)

// Size of a MurmurHash2 digest in bytes.
const Size = 4

type digest struct {
	seed              uint32
	removeWhitespaces bool
	// MurmurHash2 seeds with the total length, so nothing can be mixed
	// before the last Write.
	buf []byte
}

// New returns a hash.Hash32 that buffers all written data and hashes it on
// Sum. It is a convenience for APIs built around hash.Hash, not a streaming
// hasher.
func New(seed uint32, removeWhitespaces bool) hash.Hash32 {
	return &digest{seed: seed, removeWhitespaces: removeWhitespaces}
}

func (d *digest) Write(p []byte) (int, error) {
	if !d.removeWhitespaces {
		d.buf = append(d.buf, p...)
		return len(p), nil
	}
	for _, b := range p {
		if !IsWhitespace(b) {
			d.buf = append(d.buf, b)
		}
	}
	return len(p), nil
}

func (d *digest) Sum32() uint32 {
	return MurmurHash2(d.buf, d.seed)
}

// Sum appends the big-endian digest to b.
func (d *digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 4 }

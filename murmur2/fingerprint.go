package murmur2

import (
	"fmt"
	"io"
	"os"
)

// FingerprintSeed is the seed used for file fingerprints.
const FingerprintSeed = 1

// Fingerprint hashes data with whitespace removed and seed 1. This is the
// fingerprint CurseForge computes for uploaded files.
func Fingerprint(data []byte) uint32 {
	return Hash(data, FingerprintSeed, true)
}

// FingerprintReader reads r to the end and fingerprints its content.
func FingerprintReader(r io.Reader) (uint32, error) {
	h := New(FingerprintSeed, true)
	if _, err := io.Copy(h, r); err != nil {
		return 0, fmt.Errorf("read data: %w", err)
	}
	return h.Sum32(), nil
}

// FingerprintFile fingerprints the file at path.
func FingerprintFile(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return FingerprintReader(f)
}

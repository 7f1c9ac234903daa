// Package bucket assigns keys to buckets with MurmurHash2.
package bucket

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pv/murmurhash2-go/murmur2"
)

var (
	ErrNoBuckets       = errors.New("no buckets")
	ErrDuplicateBucket = errors.New("duplicate bucket name")
)

// Index maps key to one of n buckets with MurmurHash2(key, 0) mod n.
// It panics if n <= 0.
func Index(key []byte, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("bucket: invalid bucket count %d", n))
	}
	return int(uint64(murmur2.Sum32(key)) % uint64(n))
}

// Picker chooses a named bucket for a key by rendezvous hashing: every bucket
// scores the key with a seed derived from its name and the highest score
// wins. Removing a bucket only moves the keys it owned.
//
// A Picker is immutable and safe for concurrent use.
type Picker struct {
	names             []string
	seeds             []uint32
	seed              uint32
	removeWhitespaces bool
}

type Option func(*Picker)

// WithSeed mixes seed into every bucket score.
func WithSeed(seed uint32) Option {
	return func(p *Picker) { p.seed = seed }
}

// WithRemoveWhitespaces strips whitespace bytes from keys before scoring.
func WithRemoveWhitespaces(remove bool) Option {
	return func(p *Picker) { p.removeWhitespaces = remove }
}

// NewPicker creates a Picker over the given bucket names
func NewPicker(names []string, opts ...Option) (*Picker, error) {
	if len(names) == 0 {
		return nil, ErrNoBuckets
	}

	p := &Picker{}
	for _, opt := range opts {
		opt(p)
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBucket, name)
		}
		seen[name] = true
		p.names = append(p.names, name)
		p.seeds = append(p.seeds, p.seed^murmur2.Hash32(name))
	}

	return p, nil
}

// Buckets returns the bucket names in construction order
func (p *Picker) Buckets() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Pick returns the bucket that owns key
func (p *Picker) Pick(key []byte) string {
	key = p.prepare(key)

	best := 0
	bestScore := murmur2.MurmurHash2(key, p.seeds[0])
	for i := 1; i < len(p.names); i++ {
		score := murmur2.MurmurHash2(key, p.seeds[i])
		if score > bestScore || (score == bestScore && p.names[i] < p.names[best]) {
			best, bestScore = i, score
		}
	}
	return p.names[best]
}

// PickString is Pick for a string key
func (p *Picker) PickString(key string) string {
	return p.Pick([]byte(key))
}

// Rank returns all bucket names ordered by preference for key. The first
// element is the bucket Pick returns; the rest are fallbacks.
func (p *Picker) Rank(key []byte) []string {
	key = p.prepare(key)

	type scored struct {
		name  string
		score uint32
	}
	ranked := make([]scored, len(p.names))
	for i, name := range p.names {
		ranked[i] = scored{name: name, score: murmur2.MurmurHash2(key, p.seeds[i])}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}
	return out
}

func (p *Picker) prepare(key []byte) []byte {
	if p.removeWhitespaces {
		return murmur2.RemoveWhitespaces(key)
	}
	return key
}

// Package idmap assigns stable 32-bit IDs to names with MurmurHash2.
package idmap

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pv/murmurhash2-go/murmur2"
)

var (
	// ErrCollision means two different names resolve to the same ID
	ErrCollision = errors.New("id collision")
	// ErrMissingID means a name has no id while ids are taken from the file
	ErrMissingID = errors.New("missing id")
)

// Registry maps names to 32-bit IDs and back.
// ID generation depends on how names are registered:
// - Register: ID is generated from name using MurmurHash2 (seed 0)
// - RegisterWithID: ID is taken as given
type Registry struct {
	mu     sync.RWMutex
	byName map[string]uint32
	byID   map[uint32]string
}

// File layout for LoadFromFile and Parse
type fileNames struct {
	IDFromFile bool        `yaml:"id_from_file"`
	Names      []fileEntry `yaml:"names"`
}

type fileEntry struct {
	Name string  `yaml:"name"`
	ID   *uint32 `yaml:"id"`
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		byName: make(map[string]uint32),
		byID:   make(map[uint32]string),
	}
}

// LoadFromFile loads names from a YAML file
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	return Parse(data)
}

// Parse parses names from YAML data.
// With id_from_file set every name must carry an id; otherwise names without
// an id get one generated from the name.
func Parse(data []byte) (*Registry, error) {
	var file fileNames
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	r := New()
	for i, e := range file.Names {
		if e.Name == "" {
			return nil, fmt.Errorf("entry at index %d has no name", i)
		}

		if e.ID == nil {
			if file.IDFromFile {
				return nil, fmt.Errorf("name %q: %w", e.Name, ErrMissingID)
			}
			if _, err := r.Register(e.Name); err != nil {
				return nil, err
			}
			continue
		}

		if err := r.RegisterWithID(e.Name, *e.ID); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register assigns name the ID MurmurHash2(name, 0) and returns it
func (r *Registry) Register(name string) (uint32, error) {
	id := murmur2.Hash32(name)
	return id, r.RegisterWithID(name, id)
}

// RegisterWithID assigns name an explicit ID. Registering the same pair
// twice is a no-op.
func (r *Registry) RegisterWithID(name string, id uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if other, ok := r.byID[id]; ok && other != name {
		return fmt.Errorf("%w: %q and %q both map to %d", ErrCollision, other, name, id)
	}
	if old, ok := r.byName[name]; ok && old != id {
		return fmt.Errorf("%w: %q already registered as %d", ErrCollision, name, old)
	}

	r.byName[name] = id
	r.byID[id] = name
	return nil
}

// ID returns the ID of name
func (r *Registry) ID(name string) (uint32, bool) {
	if r == nil {
		return 0, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	return id, ok
}

// Name returns the name registered under id
func (r *Registry) Name(id uint32) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byID[id]
	return name, ok
}

// Count returns the number of registered names
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

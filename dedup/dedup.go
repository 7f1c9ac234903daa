// Package dedup detects data that has been seen before by its MurmurHash2
// fingerprint.
//
// A fingerprint match means the data is probably a duplicate. MurmurHash2 is
// not collision resistant, so callers that cannot tolerate false positives
// must compare the data itself.
package dedup

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pv/murmurhash2-go/internal/config"
	"github.com/pv/murmurhash2-go/internal/logger"
	"github.com/pv/murmurhash2-go/internal/storage"
	"github.com/pv/murmurhash2-go/murmur2"
)

type (
	Store  = storage.Store
	Entry  = storage.Entry
	Config = config.Config
)

// NewMemoryStore returns a Store that keeps fingerprints in memory.
func NewMemoryStore() Store {
	return storage.NewMemoryStorage()
}

// NewSQLiteStore returns a Store backed by the SQLite database at path.
func NewSQLiteStore(path string) (Store, error) {
	return storage.NewSQLiteStorage(path)
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Result of a Check
type Result struct {
	Fingerprint uint32
	Duplicate   bool
	FirstSeen   time.Time
	Hits        int64
}

// Checker records fingerprints in a storage.Store. It is safe for concurrent
// use as long as the store is.
type Checker struct {
	store             storage.Store
	seed              uint32
	removeWhitespaces bool
	now               func() time.Time
	log               *slog.Logger
}

type Option func(*Checker)

// WithSeed sets the hash seed. Default 0.
func WithSeed(seed uint32) Option {
	return func(c *Checker) { c.seed = seed }
}

// WithRemoveWhitespaces strips whitespace bytes before hashing.
func WithRemoveWhitespaces(remove bool) Option {
	return func(c *Checker) { c.removeWhitespaces = remove }
}

// WithLogger sets the logger used by the checker. Default is the package
// logger at construction time.
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) { c.log = log }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// New creates a Checker on top of store. The checker owns the store and
// closes it in Close.
func New(store storage.Store, opts ...Option) *Checker {
	c := &Checker{
		store: store,
		now:   time.Now,
		log:   logger.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Log
	}
	return c
}

// NewFromConfig creates the store described by cfg and a Checker using its
// hash and log settings. The package-wide logger is left untouched.
func NewFromConfig(cfg *config.Config) (*Checker, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Log.Format, level)

	var store storage.Store

	switch cfg.Storage.Type {
	case config.StorageSQLite:
		store, err = storage.NewSQLiteStorage(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("create SQLite storage: %w", err)
		}
		log.Info("Using SQLite fingerprint storage", "path", cfg.Storage.SQLitePath)
	default:
		store = storage.NewMemoryStorage()
		log.Info("Using in-memory fingerprint storage")
	}

	return New(store,
		WithSeed(murmur2.NormalizeSeed(cfg.Hash.Seed)),
		WithRemoveWhitespaces(cfg.Hash.RemoveWhitespaces),
		WithLogger(log),
	), nil
}

// Fingerprint returns the hash Check would record for data.
func (c *Checker) Fingerprint(data []byte) uint32 {
	return murmur2.Hash(data, c.seed, c.removeWhitespaces)
}

// Check records data and reports whether its fingerprint was seen before.
func (c *Checker) Check(data []byte) (Result, error) {
	fp := c.Fingerprint(data)

	e, existed, err := c.store.Add(fp, len(data), c.now())
	if err != nil {
		return Result{}, fmt.Errorf("record fingerprint %08x: %w", fp, err)
	}
	if existed {
		c.log.Debug("Duplicate data", "fingerprint", fp, "hits", e.Hits)
	}

	return Result{
		Fingerprint: fp,
		Duplicate:   existed,
		FirstSeen:   e.FirstSeen,
		Hits:        e.Hits,
	}, nil
}

// Seen reports whether data was checked before, without recording it.
func (c *Checker) Seen(data []byte) (bool, error) {
	fp := c.Fingerprint(data)
	_, ok, err := c.store.Get(fp)
	if err != nil {
		return false, fmt.Errorf("lookup fingerprint %08x: %w", fp, err)
	}
	return ok, nil
}

// Count returns the number of distinct fingerprints recorded
func (c *Checker) Count() (int, error) {
	return c.store.Count()
}

// Cleanup forgets fingerprints first seen before olderThan
func (c *Checker) Cleanup(olderThan time.Time) error {
	if err := c.store.Cleanup(olderThan); err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// Close closes the underlying store
func (c *Checker) Close() error {
	return c.store.Close()
}

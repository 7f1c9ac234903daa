package storage

import (
	"time"
)

// Entry is a recorded fingerprint
type Entry struct {
	Fingerprint uint32    `json:"fingerprint"`
	Size        int       `json:"size"`
	FirstSeen   time.Time `json:"firstSeen"`
	Hits        int64     `json:"hits"`
}

// Store keeps fingerprints of data that has already been seen
type Store interface {
	// Add records a fingerprint. If it was already present, the stored entry
	// is returned with its hit count incremented and existed is true.
	Add(fingerprint uint32, size int, seen time.Time) (entry Entry, existed bool, err error)

	// Get returns the entry for a fingerprint
	Get(fingerprint uint32) (entry Entry, ok bool, err error)

	// Count returns the number of stored fingerprints
	Count() (int, error)

	// Cleanup removes fingerprints first seen before olderThan
	Cleanup(olderThan time.Time) error

	// Close closes the store
	Close() error
}

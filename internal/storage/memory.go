package storage

import (
	"sync"
	"time"
)

type memoryStorage struct {
	mu   sync.RWMutex
	data map[uint32]Entry
}

func NewMemoryStorage() Store {
	return &memoryStorage{
		data: make(map[uint32]Entry),
	}
}

func (m *memoryStorage) Add(fingerprint uint32, size int, seen time.Time) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.data[fingerprint]; ok {
		e.Hits++
		m.data[fingerprint] = e
		return e, true, nil
	}

	e := Entry{
		Fingerprint: fingerprint,
		Size:        size,
		FirstSeen:   seen,
		Hits:        1,
	}
	m.data[fingerprint] = e
	return e, false, nil
}

func (m *memoryStorage) Get(fingerprint uint32) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[fingerprint]
	return e, ok, nil
}

func (m *memoryStorage) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data), nil
}

func (m *memoryStorage) Cleanup(olderThan time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for fp, e := range m.data {
		if e.FirstSeen.Before(olderThan) {
			delete(m.data, fp)
		}
	}

	return nil
}

func (m *memoryStorage) Close() error {
	return nil
}

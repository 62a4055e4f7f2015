package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryBackend is an in-process Backend for tests and single-node setups.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryBackend builds an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (b *MemoryBackend) Put(_ context.Context, id string, data []byte, expiresAt time.Time) error {
	copied := make([]byte, len(data))
	copy(copied, data)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[id] = memoryEntry{data: copied, expiresAt: expiresAt}
	return nil
}

func (b *MemoryBackend) Get(_ context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.After(b.now()) {
		delete(b.entries, id)
		return nil, ErrNotFound
	}

	copied := make([]byte, len(entry.data))
	copy(copied, entry.data)
	return copied, nil
}

// Len reports how many entries are held, live or not.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

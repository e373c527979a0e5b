package dedupe

import (
	"context"
	"sync"
	"time"

	"membership-backoffice/internal/pkg/clock"
)

type memoryEntry struct {
	at        time.Time
	expiresAt time.Time
}

// MemoryStore is the default single-instance DebounceStore. Entries expire
// lazily; a second process instance sees none of them.
type MemoryStore struct {
	clock clock.Clock

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		entries: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) LastAccepted(_ context.Context, key string) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return time.Time{}, false, nil
	}
	if m.clock.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return time.Time{}, false, nil
	}
	return e.at, true, nil
}

func (m *MemoryStore) MarkAccepted(_ context.Context, key string, at time.Time, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}

	m.entries[key] = memoryEntry{at: at, expiresAt: at.Add(ttl)}
	return nil
}

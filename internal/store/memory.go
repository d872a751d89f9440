// internal/store/memory.go
//
// In-memory implementation of the game.KV interface.
// This is the lightest persistence layer, used by tests, offline play,
// or whenever durability is not required.
//
// Characteristics:
//   - Stores raw JSON values keyed by persistence key in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Values are copied in and out so callers cannot alias stored bytes.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle/engine/internal/game"
)

// Memory is a map-based game.KV.
type Memory struct {
	mu   sync.RWMutex      // guards data
	data map[string][]byte // keyed by persistence key
}

var _ game.KV = (*Memory)(nil)

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Save adds or replaces the value for key.
func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Load returns a copy of the value for key, or ok=false if it was never saved.
func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

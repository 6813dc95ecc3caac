package store

import (
	"context"
	"sync"

	"fitcoach/internal/ports/output"
)

var _ output.PreferenceStore = (*Memory)(nil)

// Memory is an in-process PreferenceStore. Preferences last for the
// lifetime of the process; useful in tests and for embedders that handle
// durability themselves.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

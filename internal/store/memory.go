package store

import "context"

// Memory is a process-local key-value store used when the database is
// unavailable.
type Memory struct {
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

// Get returns the value stored under key or ErrNotFound.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put stores value under key.
func (m *Memory) Put(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

package storage

import (
	"context"
	"sync"
)

// Memory is a process-local session store. Entries do not survive a restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[sessionID][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.entries[sessionID]
	if !ok {
		entries = make(map[string]string)
		m.entries[sessionID] = entries
	}
	entries[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, sessionID string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.entries[sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(entries, key)
	}
	if len(entries) == 0 {
		delete(m.entries, sessionID)
	}
	return nil
}

// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory [ObjectStore] used by tests and local
// development. Blobs are addressable under a fake public base URL.
type MemoryStore struct {
	mu      sync.Mutex
	baseURL string
	blobs   map[string][]byte

	// FailPut, when set, makes every Put return this error.
	FailPut error
	// FailDelete, when set, makes every Delete return this error.
	FailDelete error
}

// NewMemoryStore returns an empty in-memory store serving from baseURL
// (e.g. "https://blobs.test").
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: baseURL,
		blobs:   make(map[string][]byte),
	}
}

// Put implements [ObjectStore].
func (m *MemoryStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.FailPut != nil {
		return "", m.FailPut
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored

	return m.baseURL + "/" + key, nil
}

// Delete implements [ObjectStore].
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if m.FailDelete != nil {
		return m.FailDelete
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

// Has reports whether a blob exists at key.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok
}

// Len returns the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/katalvlaran/rdsim/simulation"
)

// Memory keeps encoded reports in a map. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	reports map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{reports: make(map[string][]byte)}
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, rep *simulation.Report) error {
	data, err := encode(rep)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.reports[rep.RunID] = data
	m.mu.Unlock()
	return nil
}

// Load implements Store.
func (m *Memory) Load(_ context.Context, id string) (*simulation.Report, error) {
	m.mu.RLock()
	data, ok := m.reports[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(id, data)
}

// List implements Store.
func (m *Memory) List(context.Context) ([]string, error) {
	m.mu.RLock()
	ids := make([]string, 0, len(m.reports))
	for id := range m.reports {
		ids = append(ids, id)
	}
	m.mu.RUnlock()
	sort.Strings(ids)
	return ids, nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

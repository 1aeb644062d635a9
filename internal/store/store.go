// SPDX-License-Identifier: MIT

// Package store persists simulation reports by run ID.
//
// Backends:
//   - memory:  process-local map, the default.
//   - leveldb: embedded on-disk database (single writer per directory).
//   - redis:   shared store for several server replicas.
//
// Reports are stored as JSON; every Load returns a fresh copy.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rdsim/simulation"
)

// Sentinel errors for report storage.
var (
	// ErrNotFound indicates no report exists for the run ID.
	ErrNotFound = errors.New("store: report not found")

	// ErrInvalidReport indicates a nil report or one without a run ID.
	ErrInvalidReport = errors.New("store: invalid report")

	// ErrUnknownBackend indicates an unsupported DSN scheme.
	ErrUnknownBackend = errors.New("store: unknown backend")
)

// Store saves and loads batch reports.
type Store interface {
	// Save writes rep under rep.RunID, replacing any previous report.
	Save(ctx context.Context, rep *simulation.Report) error

	// Load returns the report for id or ErrNotFound.
	Load(ctx context.Context, id string) (*simulation.Report, error)

	// List returns all stored run IDs, sorted.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Open selects a backend from dsn:
//
//	""  or "memory://"       → in-memory store
//	"leveldb:///var/lib/rdsim" → LevelDB at the given directory
//	"redis://host:6379/0"    → Redis
func Open(ctx context.Context, dsn string) (Store, error) {
	scheme, rest, _ := strings.Cut(dsn, "://")
	switch scheme {
	case "", "memory":
		return NewMemory(), nil
	case "leveldb":
		s, err := OpenLevelDB(rest)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis", "rediss":
		s, err := OpenRedis(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("Open: scheme %q: %w", scheme, ErrUnknownBackend)
	}
}

func encode(rep *simulation.Report) ([]byte, error) {
	if rep == nil || rep.RunID == "" {
		return nil, ErrInvalidReport
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", rep.RunID, err)
	}
	return data, nil
}

func decode(id string, data []byte) (*simulation.Report, error) {
	var rep simulation.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &rep, nil
}

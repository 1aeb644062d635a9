// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/katalvlaran/rdsim/simulation"
)

// LevelDB key scheme:
//
//	r|<run id> → report JSON
const prefixReport = "r|"

// LevelDB stores reports in an embedded LevelDB database.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens (or creates) the database directory at path.
// LevelDB is single-writer: a second process on the same path fails here.
func OpenLevelDB(path string) (*LevelDB, error) {
	if path == "" {
		return nil, fmt.Errorf("OpenLevelDB: empty path: %w", ErrUnknownBackend)
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("OpenLevelDB %s: %w", path, err)
	}
	return &LevelDB{db: db}, nil
}

// Save implements Store.
func (s *LevelDB) Save(_ context.Context, rep *simulation.Report) error {
	data, err := encode(rep)
	if err != nil {
		return err
	}
	if err := s.db.Put([]byte(prefixReport+rep.RunID), data, nil); err != nil {
		return fmt.Errorf("Save %s: %w", rep.RunID, err)
	}
	return nil
}

// Load implements Store.
func (s *LevelDB) Load(_ context.Context, id string) (*simulation.Report, error) {
	data, err := s.db.Get([]byte(prefixReport+id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", id, err)
	}
	return decode(id, data)
}

// List implements Store. LevelDB iterates keys in order, so IDs come sorted.
func (s *LevelDB) List(context.Context) ([]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefixReport)), nil)
	defer iter.Release()

	var ids []string
	for iter.Next() {
		ids = append(ids, strings.TrimPrefix(string(iter.Key()), prefixReport))
	}
	return ids, iter.Error()
}

// Close implements Store.
func (s *LevelDB) Close() error { return s.db.Close() }

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/smartcontractkit/interchain-governance/types"
)

var _ Store = (*LevelDB)(nil)

// LevelDB persists the snapshot in a LevelDB database.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB creates or opens a LevelDB database at path.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}

	return NewLevelDB(db), nil
}

// OpenLevelDBReadOnly opens an existing LevelDB database at path for reading. It fails when
// no database exists there.
func OpenLevelDBReadOnly(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{ErrorIfMissing: true, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}

	return NewLevelDB(db), nil
}

// NewLevelDB wraps an already opened database. Close closes db.
func NewLevelDB(db *leveldb.DB) *LevelDB {
	return &LevelDB{db: db}
}

func (l *LevelDB) Load(_ context.Context) (*types.Snapshot, bool, error) {
	data, err := l.db.Get(snapshotKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snapshot, err := decodeSnapshot(data)
	if err != nil {
		return nil, false, err
	}

	return snapshot, true, nil
}

// Save writes the snapshot with a synced write so a committed call survives a crash.
func (l *LevelDB) Save(_ context.Context, snapshot *types.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	if err := l.db.Put(snapshotKey, data, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

func (l *LevelDB) Close() error {
	return l.db.Close()
}

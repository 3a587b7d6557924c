// Package store persists the governance state between process restarts.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smartcontractkit/interchain-governance/types"
)

// snapshotKey is the key the governance snapshot is stored under.
var snapshotKey = []byte("governance/state")

// Store loads and saves governance snapshots.
type Store interface {
	// Load returns the saved snapshot. The boolean is false when nothing has been saved yet.
	Load(ctx context.Context) (*types.Snapshot, bool, error)
	Save(ctx context.Context, snapshot *types.Snapshot) error
	Close() error
}

func encodeSnapshot(snapshot *types.Snapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("nil snapshot")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return data, nil
}

func decodeSnapshot(data []byte) (*types.Snapshot, error) {
	var snapshot types.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &snapshot, nil
}

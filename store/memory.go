package store

import (
	"context"
	"sync"

	"github.com/smartcontractkit/interchain-governance/types"
)

var _ Store = (*Memory)(nil)

// Memory keeps the encoded snapshot in memory. Loaded snapshots never alias saved ones.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (*types.Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, false, nil
	}

	snapshot, err := decodeSnapshot(m.data)
	if err != nil {
		return nil, false, err
	}

	return snapshot, true, nil
}

func (m *Memory) Save(_ context.Context, snapshot *types.Snapshot) error {
	data, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data

	return nil
}

// Close satisfies the Store interface. Nothing to release for memory.
func (m *Memory) Close() error {
	return nil
}

// Package timelock maps proposal hashes to the earliest time they may be executed.
package timelock

import (
	"maps"
	"math"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
)

// Scheduler stores the ETA of each scheduled proposal hash. An ETA of zero means the hash is not
// scheduled. It is not safe for concurrent use.
type Scheduler struct {
	minimumDelay uint64
	etas         map[common.Hash]uint64
}

// NewScheduler returns a Scheduler enforcing the given minimum delay in seconds.
func NewScheduler(minimumDelay uint64) *Scheduler {
	return &Scheduler{
		minimumDelay: minimumDelay,
		etas:         make(map[common.Hash]uint64),
	}
}

// Schedule stores max(eta, now+minimumDelay) for hash and returns the stored ETA.
func (s *Scheduler) Schedule(hash common.Hash, eta uint64, now uint64) (uint64, error) {
	if hash == (common.Hash{}) {
		return 0, sdkerrors.ErrInvalidTimeLockHash
	}
	if s.etas[hash] != 0 {
		return 0, sdkerrors.ErrTimeLockAlreadyScheduled
	}

	floor := saturatingAdd(now, s.minimumDelay)
	if eta < floor {
		eta = floor
	}

	// A zero floor only happens with now == 0 and no delay; zero is reserved for unscheduled
	if eta == 0 {
		eta = 1
	}

	s.etas[hash] = eta

	return eta, nil
}

// Cancel clears the ETA of hash and returns the previous value. Cancelling an unscheduled hash
// is a no-op.
func (s *Scheduler) Cancel(hash common.Hash) (uint64, error) {
	if hash == (common.Hash{}) {
		return 0, sdkerrors.ErrInvalidTimeLockHash
	}

	previous := s.etas[hash]
	delete(s.etas, hash)

	return previous, nil
}

// Finalize consumes the timelock of hash. It fails if the hash is not scheduled or its ETA is
// in the future.
func (s *Scheduler) Finalize(hash common.Hash, now uint64) error {
	eta := s.etas[hash]
	if hash == (common.Hash{}) || eta == 0 {
		return sdkerrors.ErrInvalidTimeLockHash
	}
	if now < eta {
		return sdkerrors.NewTimeLockNotReadyError(hash, eta, now)
	}

	delete(s.etas, hash)

	return nil
}

// ETA returns the stored ETA of hash, zero if not scheduled.
func (s *Scheduler) ETA(hash common.Hash) uint64 {
	return s.etas[hash]
}

// IsReady reports whether hash is scheduled and its ETA has passed.
func (s *Scheduler) IsReady(hash common.Hash, now uint64) bool {
	eta := s.etas[hash]
	return eta != 0 && now >= eta
}

func (s *Scheduler) MinimumDelay() uint64 {
	return s.minimumDelay
}

// Len returns the number of scheduled hashes.
func (s *Scheduler) Len() int {
	return len(s.etas)
}

func (s *Scheduler) Clone() *Scheduler {
	return &Scheduler{
		minimumDelay: s.minimumDelay,
		etas:         maps.Clone(s.etas),
	}
}

// Export returns a copy of the scheduled ETAs.
func (s *Scheduler) Export() map[common.Hash]uint64 {
	return maps.Clone(s.etas)
}

// Restore returns a Scheduler holding the given ETAs. Zero entries are dropped.
func Restore(minimumDelay uint64, etas map[common.Hash]uint64) *Scheduler {
	s := NewScheduler(minimumDelay)
	for hash, eta := range etas {
		if eta != 0 && hash != (common.Hash{}) {
			s.etas[hash] = eta
		}
	}

	return s
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

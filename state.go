package governance

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/smartcontractkit/interchain-governance/multisig"
	"github.com/smartcontractkit/interchain-governance/timelock"
	"github.com/smartcontractkit/interchain-governance/types"
)

// state is everything a governance instance owns. Calls work on a clone and swap it in on
// commit.
type state struct {
	// voting is nil for interchain-only deployments.
	voting *multisig.Voting

	// timelocks is nil for the standalone multisig.
	timelocks *timelock.Scheduler

	approvals map[common.Hash]struct{}
	balance   *uint256.Int
}

func newState(signers *types.SignerSet, withTimelocks bool, minimumDelay uint64) (*state, error) {
	s := &state{
		approvals: make(map[common.Hash]struct{}),
		balance:   new(uint256.Int),
	}

	if signers != nil {
		voting, err := multisig.NewVoting(*signers)
		if err != nil {
			return nil, err
		}
		s.voting = voting
	}

	if withTimelocks {
		s.timelocks = timelock.NewScheduler(minimumDelay)
	}

	return s, nil
}

// variantOf returns the deployment variant made of the given components.
func variantOf(withMultisig, withTimelocks bool) types.Variant {
	switch {
	case withMultisig && withTimelocks:
		return types.VariantService
	case withMultisig:
		return types.VariantMultisig
	default:
		return types.VariantInterchain
	}
}

// restoreState rebuilds the state from a snapshot. The snapshot must have been taken from the
// same deployment variant.
func restoreState(snapshot *types.Snapshot, withMultisig, withTimelocks bool, minimumDelay uint64) (*state, error) {
	want := variantOf(withMultisig, withTimelocks)
	if snapshot.Variant != want || withMultisig != (snapshot.Multisig != nil) {
		return nil, fmt.Errorf("snapshot of variant %q does not match the %s governance variant", snapshot.Variant, want)
	}

	s := &state{
		approvals: make(map[common.Hash]struct{}, len(snapshot.Approvals)),
		balance:   new(uint256.Int),
	}

	if snapshot.Multisig != nil {
		voting, err := multisig.Restore(snapshot.Multisig)
		if err != nil {
			return nil, fmt.Errorf("failed to restore multisig: %w", err)
		}
		s.voting = voting
	}

	if withTimelocks {
		s.timelocks = timelock.Restore(minimumDelay, snapshot.TimeLocks)
	}

	for _, hash := range snapshot.Approvals {
		s.approvals[hash] = struct{}{}
	}

	if snapshot.Balance != nil {
		balance, overflow := uint256.FromBig(snapshot.Balance)
		if overflow || snapshot.Balance.Sign() < 0 {
			return nil, fmt.Errorf("invalid snapshot balance %s", snapshot.Balance)
		}
		s.balance = balance
	}

	return s, nil
}

func (s *state) clone() *state {
	c := &state{
		approvals: maps.Clone(s.approvals),
		balance:   s.balance.Clone(),
	}
	if s.voting != nil {
		c.voting = s.voting.Clone()
	}
	if s.timelocks != nil {
		c.timelocks = s.timelocks.Clone()
	}

	return c
}

func (s *state) export() *types.Snapshot {
	snapshot := &types.Snapshot{
		Variant:   variantOf(s.voting != nil, s.timelocks != nil),
		TimeLocks: map[common.Hash]uint64{},
		Approvals: slices.SortedFunc(maps.Keys(s.approvals), common.Hash.Cmp),
		Balance:   s.balance.ToBig(),
	}
	if s.voting != nil {
		snapshot.Multisig = s.voting.Export()
	}
	if s.timelocks != nil {
		snapshot.TimeLocks = s.timelocks.Export()
	}

	return snapshot
}

func (s *state) scheduledCount() int {
	if s.timelocks == nil {
		return 0
	}

	return s.timelocks.Len()
}

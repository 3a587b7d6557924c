// Package multisig implements threshold voting over operation hashes.
package multisig

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

// Voting tracks a signer set, its threshold and the votes cast on each operation topic during
// the current epoch. It is not safe for concurrent use, the owner serializes access.
type Voting struct {
	signers types.SignerSet
	epoch   uint64

	// votes maps an operation topic to the signers that voted for it, in voting order.
	votes map[common.Hash][]common.Address
}

// NewVoting returns a Voting for the given signer set, starting at epoch 1.
func NewVoting(signers types.SignerSet) (*Voting, error) {
	if err := signers.Validate(); err != nil {
		return nil, err
	}

	return &Voting{
		signers: signers.Clone(),
		epoch:   1,
		votes:   make(map[common.Hash][]common.Address),
	}, nil
}

// Vote records the vote of signer on topic. It returns true when the vote completes the quorum,
// in which case the votes of the topic are cleared so the same operation can be voted again.
func (v *Voting) Vote(signer common.Address, topic common.Hash) (bool, error) {
	if !v.signers.Contains(signer) {
		return false, sdkerrors.NewNotSignerError(signer)
	}

	voters := v.votes[topic]
	if slices.Contains(voters, signer) {
		return false, sdkerrors.NewAlreadyVotedError(signer, topic)
	}

	voters = append(voters, signer)
	if uint64(len(voters)) >= v.signers.Threshold {
		delete(v.votes, topic)
		return true, nil
	}

	v.votes[topic] = voters

	return false, nil
}

// Rotate replaces the signer set, starts a new epoch and drops every pending vote.
func (v *Voting) Rotate(signers types.SignerSet) error {
	if err := signers.Validate(); err != nil {
		return err
	}

	v.signers = signers.Clone()
	v.epoch++
	clear(v.votes)

	return nil
}

// Signers returns a copy of the current signer set.
func (v *Voting) Signers() types.SignerSet {
	return v.signers.Clone()
}

func (v *Voting) Threshold() uint64 {
	return v.signers.Threshold
}

// Epoch is incremented on every rotation.
func (v *Voting) Epoch() uint64 {
	return v.epoch
}

func (v *Voting) IsSigner(account common.Address) bool {
	return v.signers.Contains(account)
}

// HasVoted reports whether account voted on topic in the current epoch.
func (v *Voting) HasVoted(account common.Address, topic common.Hash) bool {
	return slices.Contains(v.votes[topic], account)
}

// VoteCount returns the number of votes cast on topic in the current epoch.
func (v *Voting) VoteCount(topic common.Hash) uint64 {
	return uint64(len(v.votes[topic]))
}

// Clone returns a deep copy of the voting state.
func (v *Voting) Clone() *Voting {
	votes := make(map[common.Hash][]common.Address, len(v.votes))
	for topic, voters := range v.votes {
		votes[topic] = slices.Clone(voters)
	}

	return &Voting{
		signers: v.signers.Clone(),
		epoch:   v.epoch,
		votes:   votes,
	}
}

// Export returns the persistable state.
func (v *Voting) Export() *types.MultisigSnapshot {
	return &types.MultisigSnapshot{
		Signers: v.signers.Clone(),
		Epoch:   v.epoch,
		Votes:   v.Clone().votes,
	}
}

// Restore rebuilds a Voting from persisted state. Votes of accounts outside the signer set are
// rejected.
func Restore(snapshot *types.MultisigSnapshot) (*Voting, error) {
	voting, err := NewVoting(snapshot.Signers)
	if err != nil {
		return nil, err
	}

	voting.epoch = snapshot.Epoch
	for topic, voters := range snapshot.Votes {
		for _, voter := range voters {
			if !voting.signers.Contains(voter) {
				return nil, sdkerrors.NewNotSignerError(voter)
			}
		}
		if len(voters) > 0 {
			voting.votes[topic] = slices.Clone(voters)
		}
	}

	return voting, nil
}

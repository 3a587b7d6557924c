package governance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

// Multisig executes arbitrary calls once enough signers voted for them. It has no timelock and
// accepts no remote commands.
type Multisig struct {
	c *coordinator
}

// NewMultisig returns a standalone multisig with the given initial signer set.
func NewMultisig(ctx context.Context, signers types.SignerSet, invoker Invoker, opts ...Option) (*Multisig, error) {
	if err := signers.Validate(); err != nil {
		return nil, err
	}

	c, err := newCoordinator(ctx, coordinatorConfig{signers: &signers}, invoker, opts...)
	if err != nil {
		return nil, err
	}

	return &Multisig{c: c}, nil
}

// RotateSigners votes to replace the signer set.
func (m *Multisig) RotateSigners(
	ctx context.Context,
	opts types.CallOpts,
	signers []common.Address,
	threshold uint64,
) (common.Hash, types.Receipt, error) {
	var topic common.Hash
	receipt, err := m.c.transact(ctx, "rotateSigners", opts, func(t *tx) error {
		var err error
		topic, err = m.c.rotateSigners(t, opts.From, signers, threshold)

		return err
	})

	return topic, receipt, err
}

// Execute votes to call the proposal target. The call happens when opts.From completes the
// quorum.
func (m *Multisig) Execute(ctx context.Context, opts types.CallOpts, proposal types.Proposal) (types.Receipt, error) {
	return m.c.transact(ctx, "execute", opts, func(t *tx) error {
		if proposal.Target == (common.Address{}) {
			return sdkerrors.ErrInvalidTarget
		}

		_, quorum, err := m.c.vote(t, opts.From, types.Execute{Proposal: proposal})
		if err != nil || !quorum {
			return err
		}

		return m.c.invoke(t, pathStandalone, proposal.Target, proposal.CallData, proposal.Value())
	})
}

// Deposit adds opts.Value to the multisig balance.
func (m *Multisig) Deposit(ctx context.Context, opts types.CallOpts) (types.Receipt, error) {
	return m.c.transact(ctx, "deposit", opts, func(*tx) error { return nil })
}

func (m *Multisig) Balance() *big.Int {
	return m.c.balance()
}

func (m *Multisig) GetSigners() types.SignerSet {
	return m.c.signers()
}

func (m *Multisig) IsSigner(account common.Address) bool {
	return m.c.isSigner(account)
}

// HasSignerVoted reports whether signer voted on op in the current epoch.
func (m *Multisig) HasSignerVoted(signer common.Address, op types.Operation) (bool, error) {
	return m.c.hasSignerVoted(signer, op)
}

// GetSignerVotesCount returns the number of votes cast on op in the current epoch.
func (m *Multisig) GetSignerVotesCount(op types.Operation) (uint64, error) {
	return m.c.signerVotesCount(op)
}

func (m *Multisig) SignerEpoch() uint64 {
	return m.c.signerEpoch()
}

package governance

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

// ServiceGovernance adds a local signer multisig to InterchainGovernance. Multisig proposals need
// both signer quorum and an approval from the remote governance.
type ServiceGovernance struct {
	*InterchainGovernance
}

// NewServiceGovernance returns a governance with multisig voting. cfg.Multisig is the initial
// signer set, unless the store already holds a snapshot.
func NewServiceGovernance(
	ctx context.Context,
	cfg types.GovernanceConfig,
	invoker Invoker,
	opts ...Option,
) (*ServiceGovernance, error) {
	if cfg.Multisig == nil {
		return nil, errors.New("service governance requires a multisig signer set")
	}

	c, err := newInterchainCoordinator(ctx, cfg, invoker, opts...)
	if err != nil {
		return nil, err
	}

	return &ServiceGovernance{InterchainGovernance: &InterchainGovernance{c: c}}, nil
}

// RotateSigners votes to replace the signer set. It takes effect when opts.From completes the
// quorum. The returned hash is the operation hash voted on.
func (g *ServiceGovernance) RotateSigners(
	ctx context.Context,
	opts types.CallOpts,
	signers []common.Address,
	threshold uint64,
) (common.Hash, types.Receipt, error) {
	var topic common.Hash
	receipt, err := g.c.transact(ctx, "rotateSigners", opts, func(t *tx) error {
		var err error
		topic, err = g.c.rotateSigners(t, opts.From, signers, threshold)

		return err
	})

	return topic, receipt, err
}

// ExecuteMultisigProposal votes to execute proposal. When opts.From completes the quorum the
// proposal must be approved by the remote governance, otherwise the vote fails with
// ErrNotApproved and is not recorded. The approval is consumed by the execution.
func (g *ServiceGovernance) ExecuteMultisigProposal(
	ctx context.Context,
	opts types.CallOpts,
	proposal types.Proposal,
) (types.Receipt, error) {
	return g.c.transact(ctx, "executeMultisigProposal", opts, func(t *tx) error {
		if proposal.Target == (common.Address{}) {
			return sdkerrors.ErrInvalidTarget
		}

		_, quorum, err := g.c.vote(t, opts.From, types.ExecuteMultisigProposal{Proposal: proposal})
		if err != nil || !quorum {
			return err
		}

		hash, err := g.c.hashProposal(proposal)
		if err != nil {
			return err
		}
		if _, ok := t.state.approvals[hash]; !ok {
			return sdkerrors.ErrNotApproved
		}
		delete(t.state.approvals, hash)

		t.emit(types.MultisigExecuted{
			ProposalHash: hash,
			Target:       proposal.Target,
			CallData:     proposal.CallData,
			NativeValue:  proposal.Value(),
		})

		return g.c.invoke(t, pathMultisig, proposal.Target, proposal.CallData, proposal.Value())
	})
}

// IsApproved reports whether a multisig approval is pending for the proposal hash.
func (g *ServiceGovernance) IsApproved(hash common.Hash) bool {
	var ok bool
	g.c.read(func(s *state) { _, ok = s.approvals[hash] })

	return ok
}

// IsMultisigProposalApproved reports whether a multisig approval is pending for proposal.
func (g *ServiceGovernance) IsMultisigProposalApproved(proposal types.Proposal) (bool, error) {
	hash, err := g.c.hashProposal(proposal)
	if err != nil {
		return false, err
	}

	return g.IsApproved(hash), nil
}

// GetSigners returns the current signer set.
func (g *ServiceGovernance) GetSigners() types.SignerSet {
	return g.c.signers()
}

func (g *ServiceGovernance) IsSigner(account common.Address) bool {
	return g.c.isSigner(account)
}

// HasSignerVoted reports whether signer voted on op in the current epoch.
func (g *ServiceGovernance) HasSignerVoted(signer common.Address, op types.Operation) (bool, error) {
	return g.c.hasSignerVoted(signer, op)
}

// GetSignerVotesCount returns the number of votes cast on op in the current epoch.
func (g *ServiceGovernance) GetSignerVotesCount(op types.Operation) (uint64, error) {
	return g.c.signerVotesCount(op)
}

// SignerEpoch is incremented on every rotation.
func (g *ServiceGovernance) SignerEpoch() uint64 {
	return g.c.signerEpoch()
}

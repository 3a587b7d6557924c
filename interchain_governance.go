package governance

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/interchain-governance/gateway"
	"github.com/smartcontractkit/interchain-governance/types"
)

var _ gateway.Executor = (*InterchainGovernance)(nil)

// InterchainGovernance executes proposals scheduled by a trusted remote governance once their
// timelock expired.
type InterchainGovernance struct {
	c *coordinator
}

// NewInterchainGovernance returns an interchain-only governance. cfg.Multisig must be empty.
func NewInterchainGovernance(
	ctx context.Context,
	cfg types.GovernanceConfig,
	invoker Invoker,
	opts ...Option,
) (*InterchainGovernance, error) {
	if cfg.Multisig != nil {
		return nil, errors.New("interchain governance does not take a multisig signer set, use NewServiceGovernance")
	}

	c, err := newInterchainCoordinator(ctx, cfg, invoker, opts...)
	if err != nil {
		return nil, err
	}

	return &InterchainGovernance{c: c}, nil
}

func newInterchainCoordinator(
	ctx context.Context,
	cfg types.GovernanceConfig,
	invoker Invoker,
	opts ...Option,
) (*coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	minimumDelay, err := cfg.MinimumDelaySeconds()
	if err != nil {
		return nil, fmt.Errorf("invalid minimum timelock delay: %w", err)
	}

	governance := cfg.Governance

	return newCoordinator(ctx, coordinatorConfig{
		governance:   &governance,
		minimumDelay: minimumDelay,
		signers:      cfg.Multisig,
	}, invoker, opts...)
}

// Execute is the gateway-gated entry point. Without a matching gateway approval for commandID it
// fails with ErrNotApprovedByGateway before the payload is looked at. Otherwise it applies the
// command and, as the last step of the same call, consumes the approval, so a rejected command
// leaves the approval in place.
func (g *InterchainGovernance) Execute(
	ctx context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	payload []byte,
) (types.Receipt, error) {
	return g.c.transact(ctx, "execute", types.CallOpts{}, func(t *tx) error {
		if err := g.c.checkWithGateway(ctx, commandID, sourceChain, sourceAddress, payload); err != nil {
			return err
		}

		if err := g.c.handleCommand(t, sourceChain, sourceAddress, payload); err != nil {
			return err
		}

		return g.c.validateWithGateway(ctx, commandID, sourceChain, sourceAddress, payload)
	})
}

// HandleCommand applies a command whose delivery has already been verified by the relay layer.
func (g *InterchainGovernance) HandleCommand(
	ctx context.Context,
	sourceChain, sourceAddress string,
	payload []byte,
) (types.Receipt, error) {
	return g.c.transact(ctx, "handleCommand", types.CallOpts{}, func(t *tx) error {
		return g.c.handleCommand(t, sourceChain, sourceAddress, payload)
	})
}

// ExecuteProposal executes a timelocked proposal whose ETA has passed. Anyone may call it. If the
// target fails the call is rolled back and the proposal stays scheduled.
func (g *InterchainGovernance) ExecuteProposal(
	ctx context.Context,
	opts types.CallOpts,
	proposal types.Proposal,
) (types.Receipt, error) {
	return g.c.transact(ctx, "executeProposal", opts, func(t *tx) error {
		return g.c.executeTimeLock(t, proposal)
	})
}

// Deposit adds opts.Value to the governance balance.
func (g *InterchainGovernance) Deposit(ctx context.Context, opts types.CallOpts) (types.Receipt, error) {
	return g.c.transact(ctx, "deposit", opts, func(*tx) error { return nil })
}

// GetProposalEta returns the ETA of the proposal, zero if not scheduled.
func (g *InterchainGovernance) GetProposalEta(proposal types.Proposal) (uint64, error) {
	hash, err := g.c.hashProposal(proposal)
	if err != nil {
		return 0, err
	}

	return g.GetTimeLock(hash), nil
}

// GetTimeLock returns the ETA stored for hash, zero if not scheduled.
func (g *InterchainGovernance) GetTimeLock(hash common.Hash) uint64 {
	var eta uint64
	g.c.read(func(s *state) { eta = s.timelocks.ETA(hash) })

	return eta
}

// MinimumTimeLockDelay returns the minimum timelock delay in seconds.
func (g *InterchainGovernance) MinimumTimeLockDelay() uint64 {
	var delay uint64
	g.c.read(func(s *state) { delay = s.timelocks.MinimumDelay() })

	return delay
}

// Governance returns the trusted remote governance.
func (g *InterchainGovernance) Governance() types.RemoteGovernance {
	return g.c.authorizer.Governance()
}

// Balance returns the native balance held by the governance.
func (g *InterchainGovernance) Balance() *big.Int {
	return g.c.balance()
}

// HashProposal returns the timelock and approval key of proposal.
func (g *InterchainGovernance) HashProposal(proposal types.Proposal) (common.Hash, error) {
	return g.c.hashProposal(proposal)
}

// Address returns the address the governance was configured with.
func (g *InterchainGovernance) Address() common.Address {
	return g.c.address
}

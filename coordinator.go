// Package governance gates privileged calls behind threshold multisig votes, timelocks and
// commands from a trusted remote governance.
package governance

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/smartcontractkit/interchain-governance/interchain"
	"github.com/smartcontractkit/interchain-governance/internal/utils/safecast"
	"github.com/smartcontractkit/interchain-governance/sdk"
	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/store"
	"github.com/smartcontractkit/interchain-governance/types"
)

// inCallKey marks the context handed to a target while one of the governance calls is running.
type inCallKey struct{}

// coordinatorConfig selects the components of a deployment variant.
type coordinatorConfig struct {
	// governance is nil for the standalone multisig, which has no remote commands or timelocks.
	governance   *types.RemoteGovernance
	minimumDelay uint64

	// signers is nil for interchain-only deployments.
	signers *types.SignerSet
}

// coordinator is the core shared by all variants. Every mutating call is applied to a clone of
// the state and only swapped in once it fully succeeded and was persisted.
type coordinator struct {
	address  common.Address
	encoder  sdk.Encoder
	invoker  sdk.Invoker
	gateway  sdk.Gateway
	clock    sdk.Clock
	store    store.Store
	handlers []EventHandler
	metrics  *metrics

	// authorizer is nil for the standalone multisig.
	authorizer *interchain.Authorizer

	// mu serializes mutating calls. stateMu guards the committed state, which queries read
	// without waiting for a call in progress.
	mu      sync.Mutex
	stateMu sync.RWMutex
	state   *state

	// invoking is set while a target runs. Any mutating call made meanwhile is reentrant.
	invoking atomic.Bool
}

func newCoordinator(
	ctx context.Context,
	cfg coordinatorConfig,
	invoker sdk.Invoker,
	opts ...Option,
) (*coordinator, error) {
	if invoker == nil {
		return nil, errors.New("invoker is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.encoder == nil || o.clock == nil {
		return nil, errors.New("encoder and clock must not be nil")
	}

	c := &coordinator{
		address:  o.address,
		encoder:  o.encoder,
		invoker:  invoker,
		gateway:  o.gateway,
		clock:    o.clock,
		store:    o.store,
		handlers: o.handlers,
		metrics:  newMetrics(o.registerer),
	}
	if cfg.governance != nil {
		c.authorizer = interchain.NewAuthorizer(*cfg.governance, c.encoder)
	}

	s, err := c.loadState(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.state = s
	c.metrics.setScheduled(s.scheduledCount())

	return c, nil
}

func (c *coordinator) loadState(ctx context.Context, cfg coordinatorConfig) (*state, error) {
	withTimelocks := cfg.governance != nil

	if c.store != nil {
		snapshot, ok, err := c.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		if ok {
			sdk.LoggerFrom(ctx).Infof("resuming governance state from store")
			return restoreState(snapshot, cfg.signers != nil, withTimelocks, cfg.minimumDelay)
		}
	}

	return newState(cfg.signers, withTimelocks, cfg.minimumDelay)
}

// tx is the working set of one call.
type tx struct {
	ctx        context.Context
	state      *state
	now        uint64
	events     []types.Event
	executions []string
}

func (t *tx) emit(event types.Event) {
	t.events = append(t.events, event)
}

// transact runs fn as one atomic call. On error nothing fn did is kept.
func (c *coordinator) transact(
	ctx context.Context,
	method string,
	opts types.CallOpts,
	fn func(t *tx) error,
) (types.Receipt, error) {
	lggr := sdk.LoggerFrom(ctx)

	receipt, err := c.apply(ctx, opts, fn)
	if err != nil {
		lggr.Debugf("rejected %s: %v", method, err)
		c.metrics.observeCall(method, outcomeRejected)

		return types.Receipt{}, err
	}

	lggr.Infof("committed %s with %d events", method, len(receipt.Events))
	c.metrics.observeCall(method, outcomeCommitted)

	for _, event := range receipt.Events {
		lggr.Debugf("%s: %+v", event.EventName(), event)
		for _, handler := range c.handlers {
			handler(ctx, event)
		}
	}

	return receipt, nil
}

func (c *coordinator) apply(ctx context.Context, opts types.CallOpts, fn func(t *tx) error) (types.Receipt, error) {
	if marker, ok := ctx.Value(inCallKey{}).(*coordinator); (ok && marker == c) || c.invoking.Load() {
		return types.Receipt{}, sdkerrors.ErrReentrantCall
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now, err := safecast.Int64ToUint64(c.clock.Now().Unix())
	if err != nil {
		return types.Receipt{}, fmt.Errorf("invalid clock time: %w", err)
	}

	t := &tx{ctx: ctx, state: c.state.clone(), now: now}

	if err := t.deposit(opts); err != nil {
		return types.Receipt{}, err
	}

	if err := fn(t); err != nil {
		return types.Receipt{}, err
	}

	if c.store != nil {
		if err := c.store.Save(ctx, t.state.export()); err != nil {
			return types.Receipt{}, fmt.Errorf("failed to persist state: %w", err)
		}
	}

	c.stateMu.Lock()
	c.state = t.state
	c.stateMu.Unlock()

	c.metrics.setScheduled(t.state.scheduledCount())
	for _, path := range t.executions {
		c.metrics.observeExecution(path)
	}

	return types.Receipt{Timestamp: now, Events: t.events}, nil
}

func (t *tx) deposit(opts types.CallOpts) error {
	if opts.Value == nil || opts.Value.Sign() == 0 {
		return nil
	}
	if opts.Value.Sign() < 0 {
		return fmt.Errorf("negative call value %s", opts.Value)
	}

	amount, overflow := uint256.FromBig(opts.Value)
	if overflow {
		return fmt.Errorf("call value %s does not fit in uint256", opts.Value)
	}
	if _, overflow := t.state.balance.AddOverflow(t.state.balance, amount); overflow {
		return fmt.Errorf("balance overflow")
	}

	t.emit(types.Deposited{From: opts.From, Value: new(big.Int).Set(opts.Value)})

	return nil
}

// invoke debits value from the balance and calls the target. The context handed to the target
// carries the in-call marker.
func (c *coordinator) invoke(t *tx, path string, target common.Address, callData []byte, value *big.Int) error {
	amount, overflow := uint256.FromBig(value)
	if overflow || value.Sign() < 0 || t.state.balance.Lt(amount) {
		return sdkerrors.NewInsufficientBalanceError(t.state.balance.Dec(), value.String())
	}
	t.state.balance.Sub(t.state.balance, amount)

	ctx := context.WithValue(t.ctx, inCallKey{}, c)

	if err := c.invokeTarget(ctx, target, callData, value); err != nil {
		return sdkerrors.NewExecutionFailedError(target, err)
	}
	t.executions = append(t.executions, path)

	return nil
}

// handleCommand authenticates and applies a remote governance command.
func (c *coordinator) handleCommand(t *tx, sourceChain, sourceAddress string, payload []byte) error {
	if c.authorizer == nil {
		return sdkerrors.NewInvalidCommandError("remote commands are not supported")
	}

	cmd, err := c.authorizer.Authenticate(sourceChain, sourceAddress, payload)
	if err != nil {
		return err
	}

	proposal := cmd.GetProposal()
	if proposal.Target == (common.Address{}) {
		return sdkerrors.ErrInvalidTarget
	}

	hash, err := c.encoder.HashProposal(proposal)
	if err != nil {
		return sdkerrors.NewInvalidCommandError(err.Error())
	}

	lggr := sdk.LoggerFrom(t.ctx)

	switch cmd := cmd.(type) {
	case types.ScheduleTimeLock:
		eta, err := t.state.timelocks.Schedule(hash, cmd.ETA, t.now)
		if err != nil {
			return err
		}
		lggr.Infof("scheduling proposal %s for %d", hash.Hex(), eta)
		t.emit(types.ProposalScheduled{
			ProposalHash: hash,
			Target:       proposal.Target,
			CallData:     proposal.CallData,
			NativeValue:  proposal.Value(),
			ETA:          eta,
		})
	case types.CancelTimeLock:
		eta, err := t.state.timelocks.Cancel(hash)
		if err != nil {
			return err
		}
		lggr.Infof("cancelling proposal %s", hash.Hex())
		t.emit(types.ProposalCancelled{
			ProposalHash: hash,
			Target:       proposal.Target,
			CallData:     proposal.CallData,
			NativeValue:  proposal.Value(),
			ETA:          eta,
		})
	case types.ApproveMultisig:
		if t.state.voting == nil {
			return sdkerrors.NewInvalidCommandError(cmd.Type().String() + " is not supported without multisig")
		}
		lggr.Infof("approving multisig proposal %s", hash.Hex())
		t.state.approvals[hash] = struct{}{}
		t.emit(types.MultisigApproved{
			ProposalHash: hash,
			Target:       proposal.Target,
			CallData:     proposal.CallData,
			NativeValue:  proposal.Value(),
		})
	case types.CancelMultisigApproval:
		if t.state.voting == nil {
			return sdkerrors.NewInvalidCommandError(cmd.Type().String() + " is not supported without multisig")
		}
		lggr.Infof("cancelling multisig approval %s", hash.Hex())
		delete(t.state.approvals, hash)
		t.emit(types.MultisigCancelled{
			ProposalHash: hash,
			Target:       proposal.Target,
			CallData:     proposal.CallData,
			NativeValue:  proposal.Value(),
		})
	default:
		return sdkerrors.NewInvalidCommandError(fmt.Sprintf("unsupported command %T", cmd))
	}

	return nil
}

func (c *coordinator) invokeTarget(ctx context.Context, target common.Address, callData []byte, value *big.Int) error {
	c.invoking.Store(true)
	defer c.invoking.Store(false)

	return c.invoker.Invoke(ctx, target, callData, new(big.Int).Set(value))
}

// checkWithGateway reports ErrNotApprovedByGateway unless the gateway holds an approval for the
// inbound call. The approval is not consumed.
func (c *coordinator) checkWithGateway(
	ctx context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	payload []byte,
) error {
	if c.gateway == nil {
		return errors.New("no gateway configured")
	}

	ok, err := c.gateway.IsContractCallApproved(ctx, commandID, sourceChain, sourceAddress, c.address, crypto.Keccak256Hash(payload))
	if err != nil {
		return fmt.Errorf("failed to check contract call approval: %w", err)
	}
	if !ok {
		return sdkerrors.ErrNotApprovedByGateway
	}

	return nil
}

// validateWithGateway consumes the gateway approval of an inbound call.
func (c *coordinator) validateWithGateway(
	ctx context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	payload []byte,
) error {
	ok, err := c.gateway.ValidateContractCall(ctx, commandID, sourceChain, sourceAddress, c.address, crypto.Keccak256Hash(payload))
	if err != nil {
		return fmt.Errorf("failed to validate contract call: %w", err)
	}
	if !ok {
		return sdkerrors.ErrNotApprovedByGateway
	}

	return nil
}

// executeTimeLock consumes the timelock of proposal and invokes its target.
func (c *coordinator) executeTimeLock(t *tx, proposal types.Proposal) error {
	hash, err := c.encoder.HashProposal(proposal)
	if err != nil {
		return err
	}

	if err := t.state.timelocks.Finalize(hash, t.now); err != nil {
		return err
	}

	sdk.LoggerFrom(t.ctx).Infof("executing proposal %s", hash.Hex())
	t.emit(types.ProposalExecuted{
		ProposalHash: hash,
		Target:       proposal.Target,
		CallData:     proposal.CallData,
		NativeValue:  proposal.Value(),
		Timestamp:    t.now,
	})

	return c.invoke(t, pathTimelock, proposal.Target, proposal.CallData, proposal.Value())
}

// vote records a signer vote on op. It returns the operation hash and whether quorum was reached.
func (c *coordinator) vote(t *tx, from common.Address, op types.Operation) (common.Hash, bool, error) {
	if t.state.voting == nil {
		return common.Hash{}, false, errors.New("multisig is not enabled")
	}

	topic, err := c.encoder.HashOperation(op)
	if err != nil {
		return common.Hash{}, false, err
	}

	quorum, err := t.state.voting.Vote(from, topic)
	if err != nil {
		return common.Hash{}, false, err
	}
	if quorum {
		t.emit(types.MultisigOperationExecuted{OperationHash: topic})
	}

	return topic, quorum, nil
}

// rotateSigners votes on a signer rotation and applies it at quorum. The new set is validated
// on every vote.
func (c *coordinator) rotateSigners(t *tx, from common.Address, signers []common.Address, threshold uint64) (common.Hash, error) {
	set, err := types.NewSignerSet(signers, threshold)
	if err != nil {
		return common.Hash{}, err
	}

	topic, quorum, err := c.vote(t, from, types.RotateSigners{Signers: set.Signers, Threshold: set.Threshold})
	if err != nil || !quorum {
		return topic, err
	}

	if err := t.state.voting.Rotate(set); err != nil {
		return common.Hash{}, err
	}

	sdk.LoggerFrom(t.ctx).Infof("rotated signers to epoch %d", t.state.voting.Epoch())
	t.emit(types.SignersRotated{
		Signers:   set.Clone().Signers,
		Threshold: set.Threshold,
		Epoch:     t.state.voting.Epoch(),
	})

	return topic, nil
}

// read runs fn on the committed state. It does not wait for a call in progress.
func (c *coordinator) read(fn func(s *state)) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()

	fn(c.state)
}

func (c *coordinator) hashProposal(proposal types.Proposal) (common.Hash, error) {
	return c.encoder.HashProposal(proposal)
}

func (c *coordinator) balance() *big.Int {
	var b *big.Int
	c.read(func(s *state) { b = s.balance.ToBig() })

	return b
}

func (c *coordinator) signers() types.SignerSet {
	var set types.SignerSet
	c.read(func(s *state) { set = s.voting.Signers() })

	return set
}

func (c *coordinator) isSigner(account common.Address) bool {
	var ok bool
	c.read(func(s *state) { ok = s.voting.IsSigner(account) })

	return ok
}

func (c *coordinator) signerEpoch() uint64 {
	var epoch uint64
	c.read(func(s *state) { epoch = s.voting.Epoch() })

	return epoch
}

func (c *coordinator) hasSignerVoted(signer common.Address, op types.Operation) (bool, error) {
	topic, err := c.encoder.HashOperation(op)
	if err != nil {
		return false, err
	}

	var voted bool
	c.read(func(s *state) { voted = s.voting.HasVoted(signer, topic) })

	return voted, nil
}

func (c *coordinator) signerVotesCount(op types.Operation) (uint64, error) {
	topic, err := c.encoder.HashOperation(op)
	if err != nil {
		return 0, err
	}

	var count uint64
	c.read(func(s *state) { count = s.voting.VoteCount(topic) })

	return count, nil
}

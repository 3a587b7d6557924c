package governance

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/smartcontractkit/interchain-governance/gateway"
	"github.com/smartcontractkit/interchain-governance/interchain"
	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/sdk/evm"
	"github.com/smartcontractkit/interchain-governance/types"
)

// RelaySuite runs a remote governance on Ethereum that controls a service governance on
// Avalanche through the in-memory gateways.
type RelaySuite struct {
	suite.Suite

	ctx        context.Context
	clock      *testClock
	target     *fakeTarget
	relay      *gateway.Relay
	avalanche  *gateway.Memory
	sender     *interchain.Sender
	governance *ServiceGovernance
}

func TestRelaySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupTest() {
	s.ctx = testContext(s.T())
	s.clock = newTestClock(900)
	s.target = &fakeTarget{}

	ethereum := gateway.NewMemory(remote.Chain)
	s.avalanche = gateway.NewMemory("Avalanche")
	s.sender = interchain.NewSender(evm.NewEncoder(), ethereum.Sender(remote.Address))

	var err error
	s.governance, err = NewServiceGovernance(s.ctx,
		serviceConfig(200*time.Second, 2, signerA, signerB, signerC),
		s.target,
		WithClock(s.clock),
		WithGateway(s.avalanche),
		WithAddress(governanceAddress),
	)
	s.Require().NoError(err)

	s.relay = gateway.NewRelay()
	s.relay.AddChain(ethereum)
	s.relay.AddChain(s.avalanche)
	s.relay.AddExecutor("Avalanche", governanceAddress.Hex(), s.governance)
}

func (s *RelaySuite) flush() []gateway.Delivery {
	deliveries, _ := s.relay.Flush(s.ctx)
	return deliveries
}

func (s *RelaySuite) TestTimelockFlow() {
	proposal := types.NewProposal(targetY, []byte{0x02}, big.NewInt(0))

	err := s.sender.ScheduleProposal(s.ctx, "Avalanche", governanceAddress.Hex(), targetY, []byte{0x02}, nil, 1000)
	s.Require().NoError(err)

	deliveries := s.flush()
	s.Require().Len(deliveries, 1)
	s.Require().NoError(deliveries[0].Err)
	s.True(deliveries[0].Receipt.HasEvent("ProposalScheduled"))

	eta, err := s.governance.GetProposalEta(proposal)
	s.Require().NoError(err)
	s.Equal(uint64(1100), eta)

	// Scheduling twice is rejected and the approval stays unconsumed
	err = s.sender.ScheduleProposal(s.ctx, "Avalanche", governanceAddress.Hex(), targetY, []byte{0x02}, nil, 1000)
	s.Require().NoError(err)

	deliveries = s.flush()
	s.Require().Len(deliveries, 1)
	s.Require().ErrorIs(deliveries[0].Err, sdkerrors.ErrTimeLockAlreadyScheduled)

	call := deliveries[0].Call
	approved, err := s.avalanche.IsContractCallApproved(s.ctx, deliveries[0].CommandID, call.SourceChain, call.SourceAddress, governanceAddress, call.PayloadHash)
	s.Require().NoError(err)
	s.True(approved)

	s.clock.Set(1100)
	_, err = s.governance.ExecuteProposal(s.ctx, types.CallOpts{}, proposal)
	s.Require().NoError(err)
	s.Len(s.target.invocations(), 1)

	// The pending approval can now be executed since the proposal is no longer scheduled
	receipt, err := s.governance.Execute(s.ctx, deliveries[0].CommandID, call.SourceChain, call.SourceAddress, call.Payload)
	s.Require().NoError(err)
	s.Equal(uint64(1300), receipt.EventsNamed("ProposalScheduled")[0].(types.ProposalScheduled).ETA)

	// Replays are rejected by the gateway
	_, err = s.governance.Execute(s.ctx, deliveries[0].CommandID, call.SourceChain, call.SourceAddress, call.Payload)
	s.Require().ErrorIs(err, sdkerrors.ErrNotApprovedByGateway)

	err = s.sender.CancelProposal(s.ctx, "Avalanche", governanceAddress.Hex(), targetY, []byte{0x02}, nil)
	s.Require().NoError(err)
	deliveries = s.flush()
	s.Require().NoError(deliveries[0].Err)

	eta, err = s.governance.GetProposalEta(proposal)
	s.Require().NoError(err)
	s.Equal(uint64(0), eta)
}

func (s *RelaySuite) TestMultisigFlow() {
	proposal := types.NewProposal(targetX, []byte{0x01}, big.NewInt(0))

	receipt, err := s.governance.ExecuteMultisigProposal(s.ctx, types.CallOpts{From: signerA}, proposal)
	s.Require().NoError(err)
	s.Empty(receipt.Events)

	_, err = s.governance.ExecuteMultisigProposal(s.ctx, types.CallOpts{From: signerB}, proposal)
	s.Require().ErrorIs(err, sdkerrors.ErrNotApproved)

	err = s.sender.ApproveMultisig(s.ctx, "Avalanche", governanceAddress.Hex(), targetX, []byte{0x01}, nil)
	s.Require().NoError(err)
	deliveries := s.flush()
	s.Require().Len(deliveries, 1)
	s.Require().NoError(deliveries[0].Err)
	s.True(deliveries[0].Receipt.HasEvent("MultisigApproved"))

	receipt, err = s.governance.ExecuteMultisigProposal(s.ctx, types.CallOpts{From: signerB}, proposal)
	s.Require().NoError(err)
	s.True(receipt.HasEvent("MultisigExecuted"))
	s.Len(s.target.invocations(), 1)
}

func (s *RelaySuite) TestUntrustedSource() {
	untrusted := gateway.NewMemory("Polygon")
	s.relay.AddChain(untrusted)

	sender := interchain.NewSender(evm.NewEncoder(), untrusted.Sender(remote.Address))
	err := sender.ApproveMultisig(s.ctx, "Avalanche", governanceAddress.Hex(), targetX, []byte{0x01}, nil)
	s.Require().NoError(err)

	deliveries := s.flush()
	s.Require().Len(deliveries, 1)
	s.Require().ErrorIs(deliveries[0].Err, sdkerrors.ErrUnauthorized)
	s.False(s.governance.IsApproved(hashProposal(s.T(), types.NewProposal(targetX, []byte{0x01}, nil))))
}

package interchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/interchain-governance/sdk"
	"github.com/smartcontractkit/interchain-governance/types"
)

// Sender is the remote side of a governance: it encodes commands and hands them to the relay
// layer for delivery to a governance on another chain.
type Sender struct {
	encoder sdk.Encoder
	sender  sdk.MessageSender
}

// NewSender returns a Sender that encodes with encoder and delivers through sender.
func NewSender(encoder sdk.Encoder, sender sdk.MessageSender) *Sender {
	return &Sender{
		encoder: encoder,
		sender:  sender,
	}
}

// Send encodes cmd and sends it to the governance at the destination.
func (s *Sender) Send(ctx context.Context, destinationChain, destinationAddress string, cmd types.Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	payload, err := s.encoder.EncodeCommand(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode %s command: %w", cmd.Type(), err)
	}

	sdk.LoggerFrom(ctx).Debugf("sending %s command to %s/%s", cmd.Type(), destinationChain, destinationAddress)

	if err := s.sender.CallContract(ctx, destinationChain, destinationAddress, payload); err != nil {
		return fmt.Errorf("failed to send %s command: %w", cmd.Type(), err)
	}

	return nil
}

// ScheduleProposal asks the destination governance to schedule a timelocked proposal.
func (s *Sender) ScheduleProposal(
	ctx context.Context,
	destinationChain, destinationAddress string,
	target common.Address, callData []byte, nativeValue *big.Int, eta uint64,
) error {
	return s.Send(ctx, destinationChain, destinationAddress, types.ScheduleTimeLock{
		Proposal: types.NewProposal(target, callData, nativeValue),
		ETA:      eta,
	})
}

// CancelProposal asks the destination governance to cancel a timelocked proposal.
func (s *Sender) CancelProposal(
	ctx context.Context,
	destinationChain, destinationAddress string,
	target common.Address, callData []byte, nativeValue *big.Int,
) error {
	return s.Send(ctx, destinationChain, destinationAddress, types.CancelTimeLock{
		Proposal: types.NewProposal(target, callData, nativeValue),
	})
}

// ApproveMultisig asks the destination governance to approve a multisig proposal.
func (s *Sender) ApproveMultisig(
	ctx context.Context,
	destinationChain, destinationAddress string,
	target common.Address, callData []byte, nativeValue *big.Int,
) error {
	return s.Send(ctx, destinationChain, destinationAddress, types.ApproveMultisig{
		Proposal: types.NewProposal(target, callData, nativeValue),
	})
}

// CancelMultisigApproval asks the destination governance to withdraw a multisig approval.
func (s *Sender) CancelMultisigApproval(
	ctx context.Context,
	destinationChain, destinationAddress string,
	target common.Address, callData []byte, nativeValue *big.Int,
) error {
	return s.Send(ctx, destinationChain, destinationAddress, types.CancelMultisigApproval{
		Proposal: types.NewProposal(target, callData, nativeValue),
	})
}

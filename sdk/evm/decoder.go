package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	abiUtils "github.com/smartcontractkit/interchain-governance/internal/utils/abi"
	"github.com/smartcontractkit/interchain-governance/internal/utils/safecast"
	"github.com/smartcontractkit/interchain-governance/sdk"
	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

var _ sdk.Decoder = (*Encoder)(nil)

// DecodeCommand decodes a remote governance payload. Undecodable payloads, unknown command tags
// and a schedule ETA above uint64 fail with an InvalidCommandError.
func (e *Encoder) DecodeCommand(payload []byte) (types.Command, error) {
	values, err := abiUtils.Decode(commandABI, payload)
	if err != nil {
		return nil, sdkerrors.NewInvalidCommandError(fmt.Sprintf("failed to decode payload: %v", err))
	}
	if len(values) != 5 {
		return nil, sdkerrors.NewInvalidCommandError(fmt.Sprintf("expected 5 values, got %d", len(values)))
	}

	tag, ok1 := values[0].(*big.Int)
	target, ok2 := values[1].(common.Address)
	callData, ok3 := values[2].([]byte)
	nativeValue, ok4 := values[3].(*big.Int)
	eta, ok5 := values[4].(*big.Int)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, sdkerrors.NewInvalidCommandError("unexpected payload value types")
	}

	if !tag.IsUint64() || tag.Uint64() > 255 || !types.CommandType(tag.Uint64()).IsValid() {
		return nil, sdkerrors.NewInvalidCommandError("unknown command type " + tag.String())
	}

	proposal := types.NewProposal(target, callData, nativeValue)

	switch types.CommandType(tag.Uint64()) {
	case types.CommandScheduleTimeLockProposal:
		scheduled, err := safecast.BigToUint64(eta)
		if err != nil {
			return nil, sdkerrors.NewInvalidCommandError("eta " + err.Error())
		}

		return types.ScheduleTimeLock{Proposal: proposal, ETA: scheduled}, nil
	case types.CommandCancelTimeLockProposal:
		return types.CancelTimeLock{Proposal: proposal}, nil
	case types.CommandApproveMultisigProposal:
		return types.ApproveMultisig{Proposal: proposal}, nil
	default:
		return types.CancelMultisigApproval{Proposal: proposal}, nil
	}
}

package evm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	abiUtils "github.com/smartcontractkit/interchain-governance/internal/utils/abi"
	"github.com/smartcontractkit/interchain-governance/sdk"
	"github.com/smartcontractkit/interchain-governance/types"
)

// governanceABIJSON describes the privileged local calls that are gated by signer votes.
const governanceABIJSON = `[
	{"type":"function","name":"rotateSigners","inputs":[{"name":"newAccounts","type":"address[]"},{"name":"newThreshold","type":"uint256"}]},
	{"type":"function","name":"executeMultisigProposal","inputs":[{"name":"target","type":"address"},{"name":"callData","type":"bytes"},{"name":"nativeValue","type":"uint256"}]},
	{"type":"function","name":"execute","inputs":[{"name":"target","type":"address"},{"name":"callData","type":"bytes"},{"name":"nativeValue","type":"uint256"}]}
]`

// commandABI is the layout of a remote governance payload:
// abi.encode(uint256 command, address target, bytes callData, uint256 nativeValue, uint256 eta).
const commandABI = `[{"type":"uint256"},{"type":"address"},{"type":"bytes"},{"type":"uint256"},{"type":"uint256"}]`

var governanceABI = mustParseABI(governanceABIJSON)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}

var _ sdk.Encoder = (*Encoder)(nil)

// Encoder hashes proposals and operations and encodes remote commands using the EVM ABI.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// HashProposal returns keccak256(abi.encodePacked(target, callData, nativeValue)).
func (e *Encoder) HashProposal(proposal types.Proposal) (common.Hash, error) {
	packed, err := abiUtils.EncodePacked(proposal.Target, proposal.CallData, proposal.Value())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack proposal: %w", err)
	}

	return crypto.Keccak256Hash(packed), nil
}

// EncodeOperation returns the ABI encoded call of the operation, selector included.
func (e *Encoder) EncodeOperation(op types.Operation) ([]byte, error) {
	switch o := op.(type) {
	case types.RotateSigners:
		signers := o.Signers
		if signers == nil {
			signers = []common.Address{}
		}

		return governanceABI.Pack("rotateSigners", signers, new(big.Int).SetUint64(o.Threshold))
	case types.ExecuteMultisigProposal:
		return packProposalCall("executeMultisigProposal", o.Proposal)
	case types.Execute:
		return packProposalCall("execute", o.Proposal)
	default:
		return nil, fmt.Errorf("unsupported operation type %T", op)
	}
}

// HashOperation returns keccak256 of the encoded operation call. This is the vote topic.
func (e *Encoder) HashOperation(op types.Operation) (common.Hash, error) {
	encoded, err := e.EncodeOperation(op)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(encoded), nil
}

// EncodeCommand returns the payload of a remote governance command. The ETA is only meaningful
// for ScheduleTimeLock and is encoded as zero otherwise.
func (e *Encoder) EncodeCommand(cmd types.Command) ([]byte, error) {
	if cmd == nil {
		return nil, fmt.Errorf("nil command")
	}

	var eta uint64
	if schedule, ok := cmd.(types.ScheduleTimeLock); ok {
		eta = schedule.ETA
	}

	proposal := cmd.GetProposal()
	if err := checkUint256(proposal.Value()); err != nil {
		return nil, err
	}

	return abiUtils.Encode(commandABI,
		big.NewInt(int64(cmd.Type())),
		proposal.Target,
		nonNilBytes(proposal.CallData),
		proposal.Value(),
		new(big.Int).SetUint64(eta),
	)
}

func packProposalCall(method string, proposal types.Proposal) ([]byte, error) {
	if err := checkUint256(proposal.Value()); err != nil {
		return nil, err
	}

	return governanceABI.Pack(method, proposal.Target, nonNilBytes(proposal.CallData), proposal.Value())
}

func checkUint256(v *big.Int) error {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return fmt.Errorf("native value %s does not fit in uint256", v)
	}

	return nil
}

func nonNilBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}

	return b
}

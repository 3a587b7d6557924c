package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abiUtils "github.com/smartcontractkit/interchain-governance/internal/utils/abi"
	"github.com/smartcontractkit/interchain-governance/types"
)

var (
	target   = common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")
	callData = []byte{0xde, 0xad, 0xbe, 0xef}
)

func TestEncoder_HashProposal(t *testing.T) {
	t.Parallel()

	encoder := NewEncoder()

	value := make([]byte, 32)
	value[31] = 0x05
	manual := crypto.Keccak256Hash(append(append(target.Bytes(), callData...), value...))

	got, err := encoder.HashProposal(types.NewProposal(target, callData, big.NewInt(5)))
	require.NoError(t, err)
	assert.Equal(t, manual, got)

	// The key must change when any field changes
	other, err := encoder.HashProposal(types.NewProposal(target, callData, big.NewInt(6)))
	require.NoError(t, err)
	assert.NotEqual(t, got, other)

	// nil and zero values hash identically
	nilValue, err := encoder.HashProposal(types.NewProposal(target, callData, nil))
	require.NoError(t, err)
	zeroValue, err := encoder.HashProposal(types.NewProposal(target, callData, big.NewInt(0)))
	require.NoError(t, err)
	assert.Equal(t, zeroValue, nilValue)

	_, err = encoder.HashProposal(types.NewProposal(target, callData, big.NewInt(-1)))
	require.Error(t, err)
}

func TestEncoder_EncodeOperation(t *testing.T) {
	t.Parallel()

	encoder := NewEncoder()
	proposal := types.NewProposal(target, callData, big.NewInt(1))

	tests := []struct {
		name         string
		give         types.Operation
		wantSelector string
		wantErr      string
	}{
		{
			name:         "rotate signers",
			give:         types.RotateSigners{Signers: []common.Address{target}, Threshold: 1},
			wantSelector: "rotateSigners(address[],uint256)",
		},
		{
			name:         "execute multisig proposal",
			give:         types.ExecuteMultisigProposal{Proposal: proposal},
			wantSelector: "executeMultisigProposal(address,bytes,uint256)",
		},
		{
			name:         "execute",
			give:         types.Execute{Proposal: proposal},
			wantSelector: "execute(address,bytes,uint256)",
		},
		{
			name:    "nil operation",
			give:    nil,
			wantErr: "unsupported operation type <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := encoder.EncodeOperation(tt.give)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, crypto.Keccak256([]byte(tt.wantSelector))[:4], got[:4])

			hash, err := encoder.HashOperation(tt.give)
			require.NoError(t, err)
			assert.Equal(t, crypto.Keccak256Hash(got), hash)
		})
	}
}

func TestEncoder_HashOperation_DistinguishesOperations(t *testing.T) {
	t.Parallel()

	encoder := NewEncoder()
	proposal := types.NewProposal(target, callData, nil)

	multisig, err := encoder.HashOperation(types.ExecuteMultisigProposal{Proposal: proposal})
	require.NoError(t, err)
	standalone, err := encoder.HashOperation(types.Execute{Proposal: proposal})
	require.NoError(t, err)
	assert.NotEqual(t, multisig, standalone)

	rotateA, err := encoder.HashOperation(types.RotateSigners{Signers: []common.Address{target}, Threshold: 1})
	require.NoError(t, err)
	rotateB, err := encoder.HashOperation(types.RotateSigners{Signers: []common.Address{target}, Threshold: 2})
	require.NoError(t, err)
	assert.NotEqual(t, rotateA, rotateB)
}

func TestEncoder_EncodeCommand(t *testing.T) {
	t.Parallel()

	encoder := NewEncoder()
	proposal := types.NewProposal(target, callData, big.NewInt(7))

	payload, err := encoder.EncodeCommand(types.ScheduleTimeLock{Proposal: proposal, ETA: 1000})
	require.NoError(t, err)

	want, err := abiUtils.Encode(commandABI, big.NewInt(0), target, callData, big.NewInt(7), big.NewInt(1000))
	require.NoError(t, err)
	assert.Equal(t, want, payload)

	_, err = encoder.EncodeCommand(nil)
	require.EqualError(t, err, "nil command")
}

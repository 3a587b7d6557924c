package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/interchain-governance/types"
)

// recordingExecutor validates the call on its gateway like a real destination contract would.
type recordingExecutor struct {
	gateway *Memory
	address common.Address
	fail    error
	calls   [][]byte
}

func (e *recordingExecutor) Execute(
	ctx context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	payload []byte,
) (types.Receipt, error) {
	if e.fail != nil {
		return types.Receipt{}, e.fail
	}

	ok, err := e.gateway.ValidateContractCall(ctx, commandID, sourceChain, sourceAddress, e.address, crypto.Keccak256Hash(payload))
	if err != nil {
		return types.Receipt{}, err
	}
	if !ok {
		return types.Receipt{}, errors.New("not approved")
	}

	e.calls = append(e.calls, payload)

	return types.Receipt{Timestamp: 1}, nil
}

func TestRelay_Flush(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := NewMemory("Ethereum")
	destination := NewMemory("Avalanche")
	destinationAddress := contract.Hex()

	executor := &recordingExecutor{gateway: destination, address: contract}

	relay := NewRelay()
	relay.AddChain(source)
	relay.AddChain(destination)
	relay.AddExecutor("Avalanche", destinationAddress, executor)

	require.NoError(t, source.Sender("0xgov").CallContract(ctx, "Avalanche", destinationAddress, []byte{0x01}))
	require.NoError(t, source.Sender("0xgov").CallContract(ctx, "Avalanche", destinationAddress, []byte{0x02}))

	deliveries, err := relay.Flush(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 2)
	assert.NotEqual(t, deliveries[0].CommandID, deliveries[1].CommandID)
	assert.Equal(t, [][]byte{{0x01}, {0x02}}, executor.calls)
	assert.Equal(t, uint64(1), deliveries[0].Receipt.Timestamp)

	// Nothing left to relay
	deliveries, err = relay.Flush(ctx)
	require.NoError(t, err)
	assert.Empty(t, deliveries)
}

func TestRelay_Flush_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := NewMemory("Ethereum")
	destination := NewMemory("Avalanche")

	relay := NewRelay()
	relay.AddChain(source)
	relay.AddChain(destination)
	relay.AddExecutor("Avalanche", contract.Hex(), &recordingExecutor{fail: errors.New("boom")})

	require.NoError(t, source.Sender("0xgov").CallContract(ctx, "Polygon", contract.Hex(), nil))
	require.NoError(t, source.Sender("0xgov").CallContract(ctx, "Avalanche", "0xnobody", nil))
	require.NoError(t, source.Sender("0xgov").CallContract(ctx, "Avalanche", contract.Hex(), nil))

	deliveries, err := relay.Flush(ctx)
	require.Error(t, err)
	require.Len(t, deliveries, 3)
	require.EqualError(t, deliveries[0].Err, `unknown destination chain "Polygon"`)
	require.EqualError(t, deliveries[1].Err, `no executor at 0xnobody on "Avalanche"`)
	require.EqualError(t, deliveries[2].Err, "boom")
}

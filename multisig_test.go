package governance

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

func newMultisig(t *testing.T, target Invoker, opts ...Option) *Multisig {
	t.Helper()

	set, err := types.NewSignerSet([]common.Address{signerA, signerB, signerC}, 2)
	require.NoError(t, err)

	m, err := NewMultisig(testContext(t), set, target, opts...)
	require.NoError(t, err)

	return m
}

func TestMultisig_QuorumScenario(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	target := &fakeTarget{}
	registry := prometheus.NewRegistry()
	m := newMultisig(t, target, WithRegisterer(registry))

	proposal := types.NewProposal(targetX, []byte{0x01}, big.NewInt(0))

	for range 2 {
		receipt, err := m.Execute(ctx, types.CallOpts{From: signerA}, proposal)
		require.NoError(t, err)
		assert.Empty(t, receipt.Events)

		receipt, err = m.Execute(ctx, types.CallOpts{From: signerB}, proposal)
		require.NoError(t, err)
		require.Len(t, receipt.Events, 1)
		assert.Equal(t, "MultisigOperationExecuted", receipt.Events[0].EventName())
	}

	calls := target.invocations()
	require.Len(t, calls, 2)
	assert.Equal(t, targetX, calls[1].Target)
	assert.Equal(t, []byte{0x01}, calls[1].CallData)
	assert.InDelta(t, 2, testutil.ToFloat64(m.c.metrics.executions.WithLabelValues(pathStandalone)), 0)
}

func TestMultisig_Errors(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	m := newMultisig(t, &fakeTarget{})
	proposal := types.NewProposal(targetX, []byte{0x01}, big.NewInt(3))

	_, err := m.Execute(ctx, types.CallOpts{From: outsider}, proposal)
	require.ErrorIs(t, err, sdkerrors.ErrNotSigner)

	_, err = m.Execute(ctx, types.CallOpts{From: signerA}, proposal)
	require.NoError(t, err)

	_, err = m.Execute(ctx, types.CallOpts{From: signerA}, proposal)
	require.ErrorIs(t, err, sdkerrors.ErrAlreadyVoted)

	// Quorum without funds rolls back the final vote
	_, err = m.Execute(ctx, types.CallOpts{From: signerB}, proposal)
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientBalance)

	voted, err := m.HasSignerVoted(signerB, types.Execute{Proposal: proposal})
	require.NoError(t, err)
	assert.False(t, voted)

	_, err = m.Deposit(ctx, types.CallOpts{From: outsider, Value: big.NewInt(3)})
	require.NoError(t, err)
	assert.Equal(t, "3", m.Balance().String())

	_, err = m.Execute(ctx, types.CallOpts{From: signerB}, proposal)
	require.NoError(t, err)
	assert.Equal(t, "0", m.Balance().String())
}

func TestMultisig_RotateSigners(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	m := newMultisig(t, &fakeTarget{})
	proposal := types.NewProposal(targetX, []byte{0x01}, nil)

	_, err := m.Execute(ctx, types.CallOpts{From: signerC}, proposal)
	require.NoError(t, err)

	_, _, err = m.RotateSigners(ctx, types.CallOpts{From: signerA}, []common.Address{signerD}, 1)
	require.NoError(t, err)
	_, receipt, err := m.RotateSigners(ctx, types.CallOpts{From: signerB}, []common.Address{signerD}, 1)
	require.NoError(t, err)
	assert.True(t, receipt.HasEvent("SignersRotated"))

	assert.Equal(t, uint64(2), m.SignerEpoch())
	assert.True(t, m.IsSigner(signerD))
	assert.Equal(t, uint64(1), m.GetSigners().Threshold)

	count, err := m.GetSignerVotesCount(types.Execute{Proposal: proposal})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)

	// A single vote of the new signer reaches the new threshold
	receipt, err = m.Execute(ctx, types.CallOpts{From: signerD}, proposal)
	require.NoError(t, err)
	assert.True(t, receipt.HasEvent("MultisigOperationExecuted"))
}

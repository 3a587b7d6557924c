package governance

import (
	"context"
	"math/big"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/smartcontractkit/interchain-governance/sdk"
	"github.com/smartcontractkit/interchain-governance/sdk/evm"
	"github.com/smartcontractkit/interchain-governance/types"
)

var (
	signerA  = common.HexToAddress("0xA")
	signerB  = common.HexToAddress("0xB")
	signerC  = common.HexToAddress("0xC")
	signerD  = common.HexToAddress("0xD")
	outsider = common.HexToAddress("0xE")

	targetX = common.HexToAddress("0x1000000000000000000000000000000000000001")
	targetY = common.HexToAddress("0x2000000000000000000000000000000000000002")

	governanceAddress = common.HexToAddress("0x3000000000000000000000000000000000000003")

	remote = types.RemoteGovernance{Chain: "Ethereum", Address: "0x00000000000000000000000000000000000000aB"}
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return sdk.ContextWithLogger(context.Background(), zaptest.NewLogger(t).Sugar())
}

// testClock is a settable clock in unix seconds.
type testClock struct {
	mu  sync.Mutex
	now int64
}

func newTestClock(now int64) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return time.Unix(c.now, 0)
}

func (c *testClock) Set(now int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

type invocation struct {
	Target   common.Address
	CallData []byte
	Value    *big.Int
}

// fakeTarget records invocations and fails while err is set.
type fakeTarget struct {
	mu       sync.Mutex
	calls    []invocation
	err      error
	onInvoke func(ctx context.Context) error
}

func (f *fakeTarget) Invoke(ctx context.Context, target common.Address, callData []byte, value *big.Int) error {
	f.mu.Lock()
	err, onInvoke := f.err, f.onInvoke
	f.mu.Unlock()

	if onInvoke != nil {
		if hookErr := onInvoke(ctx); hookErr != nil {
			return hookErr
		}
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, invocation{Target: target, CallData: slices.Clone(callData), Value: value})

	return nil
}

func (f *fakeTarget) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

func (f *fakeTarget) invocations() []invocation {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.calls)
}

func encodeCommand(t *testing.T, cmd types.Command) []byte {
	t.Helper()

	payload, err := evm.NewEncoder().EncodeCommand(cmd)
	require.NoError(t, err)

	return payload
}

func hashProposal(t *testing.T, proposal types.Proposal) common.Hash {
	t.Helper()

	hash, err := evm.NewEncoder().HashProposal(proposal)
	require.NoError(t, err)

	return hash
}

func interchainConfig(delay time.Duration) types.GovernanceConfig {
	return types.GovernanceConfig{
		Governance:           remote,
		MinimumTimeLockDelay: types.NewDuration(delay),
	}
}

func serviceConfig(delay time.Duration, threshold uint64, signers ...common.Address) types.GovernanceConfig {
	cfg := interchainConfig(delay)
	cfg.Multisig = &types.SignerSet{Signers: signers, Threshold: threshold}

	return cfg
}

package gateway

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/smartcontractkit/interchain-governance/sdk"
	"github.com/smartcontractkit/interchain-governance/types"
)

// Executor is the gateway-gated entry point of a destination contract.
type Executor interface {
	Execute(
		ctx context.Context,
		commandID common.Hash,
		sourceChain, sourceAddress string,
		payload []byte,
	) (types.Receipt, error)
}

// Delivery is the outcome of relaying one outbound call.
type Delivery struct {
	CommandID common.Hash
	Call      ContractCall
	Receipt   types.Receipt
	Err       error
}

// Relay moves outbound calls between registered gateways and executes them on the destination.
type Relay struct {
	mu        sync.Mutex
	gateways  map[string]*Memory
	executors map[string]map[string]Executor
}

func NewRelay() *Relay {
	return &Relay{
		gateways:  make(map[string]*Memory),
		executors: make(map[string]map[string]Executor),
	}
}

// AddChain registers the gateway of a chain.
func (r *Relay) AddChain(gateway *Memory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gateways[gateway.Chain()] = gateway
}

// AddExecutor registers the contract reached at address on chain.
func (r *Relay) AddExecutor(chain, address string, executor Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.executors[chain] == nil {
		r.executors[chain] = make(map[string]Executor)
	}
	r.executors[chain][address] = executor
}

// Flush drains the outbound calls of every gateway, approves each on its destination gateway
// under a fresh command ID and executes it. Chains are processed in name order. The returned
// error joins the errors of the failed deliveries.
func (r *Relay) Flush(ctx context.Context) ([]Delivery, error) {
	r.mu.Lock()
	gateways := maps.Clone(r.gateways)
	r.mu.Unlock()

	lggr := sdk.LoggerFrom(ctx)

	var (
		deliveries []Delivery
		errs       []error
	)
	for _, chain := range slices.Sorted(maps.Keys(gateways)) {
		for _, call := range gateways[chain].drain() {
			delivery := r.deliver(ctx, gateways, call)
			if delivery.Err != nil {
				lggr.Warnf("delivery %s from %s to %s failed: %v",
					delivery.CommandID.Hex(), call.SourceChain, call.DestinationChain, delivery.Err)
				errs = append(errs, delivery.Err)
			}
			deliveries = append(deliveries, delivery)
		}
	}

	return deliveries, errors.Join(errs...)
}

func (r *Relay) deliver(ctx context.Context, gateways map[string]*Memory, call ContractCall) Delivery {
	id := uuid.New()
	delivery := Delivery{
		CommandID: common.BytesToHash(id[:]),
		Call:      call,
	}

	destination, ok := gateways[call.DestinationChain]
	if !ok {
		delivery.Err = fmt.Errorf("unknown destination chain %q", call.DestinationChain)
		return delivery
	}

	r.mu.Lock()
	executor, ok := r.executors[call.DestinationChain][call.DestinationAddress]
	r.mu.Unlock()
	if !ok {
		delivery.Err = fmt.Errorf("no executor at %s on %q", call.DestinationAddress, call.DestinationChain)
		return delivery
	}

	err := destination.ApproveContractCall(
		delivery.CommandID,
		call.SourceChain,
		call.SourceAddress,
		common.HexToAddress(call.DestinationAddress),
		call.PayloadHash,
	)
	if err != nil {
		delivery.Err = err
		return delivery
	}

	delivery.Receipt, delivery.Err = executor.Execute(ctx, delivery.CommandID, call.SourceChain, call.SourceAddress, call.Payload)

	return delivery
}

// Package gateway provides an in-memory cross-chain gateway and relay for development and tests.
package gateway

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/interchain-governance/sdk"
)

var _ sdk.Gateway = (*Memory)(nil)

// ContractCall is an outbound cross-chain call waiting to be relayed.
type ContractCall struct {
	SourceChain        string
	SourceAddress      string
	DestinationChain   string
	DestinationAddress string
	Payload            []byte
	PayloadHash        common.Hash
}

type approval struct {
	sourceChain     string
	sourceAddress   string
	contractAddress common.Address
	payloadHash     common.Hash
}

// Memory is the gateway of one chain. It queues outbound calls and holds the approvals of
// inbound calls until they are validated.
type Memory struct {
	chain string

	mu        sync.Mutex
	outbound  []ContractCall
	approvals map[common.Hash]approval
	executed  map[common.Hash]struct{}
}

// NewMemory returns the gateway of the named chain.
func NewMemory(chain string) *Memory {
	return &Memory{
		chain:     chain,
		approvals: make(map[common.Hash]approval),
		executed:  make(map[common.Hash]struct{}),
	}
}

// Chain returns the name of the chain the gateway runs on.
func (g *Memory) Chain() string {
	return g.chain
}

// Sender returns a sdk.MessageSender whose calls originate from sourceAddress on this chain.
func (g *Memory) Sender(sourceAddress string) sdk.MessageSender {
	return &sender{gateway: g, sourceAddress: sourceAddress}
}

// ApproveContractCall records that the call identified by commandID was verified. A command ID
// can only be approved once.
func (g *Memory) ApproveContractCall(
	commandID common.Hash,
	sourceChain, sourceAddress string,
	contractAddress common.Address,
	payloadHash common.Hash,
) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.approvals[commandID]; ok {
		return fmt.Errorf("command %s already approved", commandID.Hex())
	}
	if _, ok := g.executed[commandID]; ok {
		return fmt.Errorf("command %s already executed", commandID.Hex())
	}

	g.approvals[commandID] = approval{
		sourceChain:     sourceChain,
		sourceAddress:   sourceAddress,
		contractAddress: contractAddress,
		payloadHash:     payloadHash,
	}

	return nil
}

// ValidateContractCall consumes a matching approval. It returns false when no approval matches.
func (g *Memory) ValidateContractCall(
	_ context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	contractAddress common.Address,
	payloadHash common.Hash,
) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	want := approval{
		sourceChain:     sourceChain,
		sourceAddress:   sourceAddress,
		contractAddress: contractAddress,
		payloadHash:     payloadHash,
	}

	got, ok := g.approvals[commandID]
	if !ok || got != want {
		return false, nil
	}

	delete(g.approvals, commandID)
	g.executed[commandID] = struct{}{}

	return true, nil
}

// IsContractCallApproved reports whether a matching approval is pending.
func (g *Memory) IsContractCallApproved(
	_ context.Context,
	commandID common.Hash,
	sourceChain, sourceAddress string,
	contractAddress common.Address,
	payloadHash common.Hash,
) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	got, ok := g.approvals[commandID]

	return ok && got == approval{sourceChain, sourceAddress, contractAddress, payloadHash}, nil
}

// Outbound returns a copy of the queued outbound calls.
func (g *Memory) Outbound() []ContractCall {
	g.mu.Lock()
	defer g.mu.Unlock()

	return slices.Clone(g.outbound)
}

// drain removes and returns the queued outbound calls.
func (g *Memory) drain() []ContractCall {
	g.mu.Lock()
	defer g.mu.Unlock()

	calls := g.outbound
	g.outbound = nil

	return calls
}

func (g *Memory) callContract(sourceAddress, destinationChain, destinationAddress string, payload []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.outbound = append(g.outbound, ContractCall{
		SourceChain:        g.chain,
		SourceAddress:      sourceAddress,
		DestinationChain:   destinationChain,
		DestinationAddress: destinationAddress,
		Payload:            slices.Clone(payload),
		PayloadHash:        crypto.Keccak256Hash(payload),
	})
}

type sender struct {
	gateway       *Memory
	sourceAddress string
}

func (s *sender) CallContract(_ context.Context, destinationChain, destinationAddress string, payload []byte) error {
	if destinationChain == "" {
		return fmt.Errorf("destination chain is required")
	}

	s.gateway.callContract(s.sourceAddress, destinationChain, destinationAddress, payload)

	return nil
}

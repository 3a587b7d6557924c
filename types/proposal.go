package types

import (
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// Proposal is a call the governance may eventually execute: call Target with CallData while
// transferring NativeValue.
type Proposal struct {
	Target      common.Address `json:"target"`
	CallData    []byte         `json:"callData"`
	NativeValue *big.Int       `json:"nativeValue"`
}

// NewProposal returns a proposal for the given call. A nil value is treated as zero.
func NewProposal(target common.Address, callData []byte, nativeValue *big.Int) Proposal {
	return Proposal{
		Target:      target,
		CallData:    callData,
		NativeValue: nativeValue,
	}
}

// Value returns the native value of the proposal, never nil.
func (p Proposal) Value() *big.Int {
	if p.NativeValue == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(p.NativeValue)
}

// Clone returns a deep copy of the proposal.
func (p Proposal) Clone() Proposal {
	return Proposal{
		Target:      p.Target,
		CallData:    slices.Clone(p.CallData),
		NativeValue: p.Value(),
	}
}

// CallOpts describes who is making a local call and how much native value is attached to it.
type CallOpts struct {
	From  common.Address
	Value *big.Int
}

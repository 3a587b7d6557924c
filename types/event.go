package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is an observable effect of a committed governance call.
type Event interface {
	EventName() string
}

// ProposalScheduled is emitted when the remote governance schedules a timelocked proposal.
type ProposalScheduled struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
	ETA          uint64
}

// ProposalCancelled is emitted when the remote governance cancels a timelocked proposal. ETA is
// the value that was cleared, zero when nothing was scheduled.
type ProposalCancelled struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
	ETA          uint64
}

// ProposalExecuted is emitted when a timelocked proposal has been executed.
type ProposalExecuted struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
	Timestamp    uint64
}

// MultisigApproved is emitted when the remote governance approves a multisig proposal.
type MultisigApproved struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
}

// MultisigCancelled is emitted when the remote governance withdraws a multisig approval.
type MultisigCancelled struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
}

// MultisigExecuted is emitted when an approved multisig proposal has been executed.
type MultisigExecuted struct {
	ProposalHash common.Hash
	Target       common.Address
	CallData     []byte
	NativeValue  *big.Int
}

// MultisigOperationExecuted is emitted when a voted operation reaches quorum and takes effect.
// OperationHash is the keccak256 of the encoded operation call.
type MultisigOperationExecuted struct {
	OperationHash common.Hash
}

// SignersRotated is emitted when the signer set has been replaced.
type SignersRotated struct {
	Signers   []common.Address
	Threshold uint64
	Epoch     uint64
}

// Deposited is emitted when native value is attached to a committed call.
type Deposited struct {
	From  common.Address
	Value *big.Int
}

func (ProposalScheduled) EventName() string         { return "ProposalScheduled" }
func (ProposalCancelled) EventName() string         { return "ProposalCancelled" }
func (ProposalExecuted) EventName() string          { return "ProposalExecuted" }
func (MultisigApproved) EventName() string          { return "MultisigApproved" }
func (MultisigCancelled) EventName() string         { return "MultisigCancelled" }
func (MultisigExecuted) EventName() string          { return "MultisigExecuted" }
func (MultisigOperationExecuted) EventName() string { return "MultisigOperationExecuted" }
func (SignersRotated) EventName() string            { return "SignersRotated" }
func (Deposited) EventName() string                 { return "Deposited" }

// Receipt is the result of a committed governance call.
type Receipt struct {
	// Timestamp is the unix time at which the call was applied.
	Timestamp uint64
	Events    []Event
}

// EventsNamed returns the events with the given name, in emission order.
func (r Receipt) EventsNamed(name string) []Event {
	var events []Event
	for _, e := range r.Events {
		if e.EventName() == name {
			events = append(events, e)
		}
	}

	return events
}

// HasEvent reports whether the receipt contains at least one event with the given name.
func (r Receipt) HasEvent(name string) bool {
	return len(r.EventsNamed(name)) > 0
}

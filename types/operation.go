package types

import "github.com/ethereum/go-ethereum/common"

// Operation is a privileged local call that must gather signer votes before it takes effect.
// The set of operations is closed: RotateSigners, ExecuteMultisigProposal and Execute.
type Operation interface {
	isOperation()
}

// RotateSigners replaces the signer set and threshold once it reaches quorum.
type RotateSigners struct {
	Signers   []common.Address
	Threshold uint64
}

// ExecuteMultisigProposal calls the proposal target once it reaches quorum and a matching remote
// approval exists.
type ExecuteMultisigProposal struct {
	Proposal Proposal
}

// Execute calls the proposal target once it reaches quorum. Only the standalone multisig
// accepts it.
type Execute struct {
	Proposal Proposal
}

func (RotateSigners) isOperation()           {}
func (ExecuteMultisigProposal) isOperation() {}
func (Execute) isOperation()                 {}

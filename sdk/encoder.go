package sdk

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/interchain-governance/types"
)

// Encoder derives the identity keys of proposals and operations and encodes remote commands.
//
// This must be implemented by any chain family the governance runs on.
type Encoder interface {
	Decoder

	// HashProposal returns the timelock and approval key of a proposal.
	HashProposal(proposal types.Proposal) (common.Hash, error)

	// EncodeOperation returns the canonical call encoding of a voted operation.
	EncodeOperation(op types.Operation) ([]byte, error)

	// HashOperation returns the vote topic of a voted operation.
	HashOperation(op types.Operation) (common.Hash, error)

	// EncodeCommand returns the payload the remote governance sends for a command.
	EncodeCommand(cmd types.Command) ([]byte, error)
}

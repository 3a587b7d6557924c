package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Variant names the deployment variant a snapshot was taken from.
type Variant string

const (
	VariantInterchain Variant = "interchain"
	VariantService    Variant = "service"
	VariantMultisig   Variant = "multisig"
)

// Snapshot is the persisted state of a governance instance.
type Snapshot struct {
	Variant Variant `json:"variant"`

	// Multisig is nil for interchain-only deployments.
	Multisig *MultisigSnapshot `json:"multisig,omitempty"`

	// TimeLocks maps proposal hashes to their ETA. Only non-zero entries are stored.
	TimeLocks map[common.Hash]uint64 `json:"timeLocks"`

	// Approvals lists the proposal hashes with a pending multisig approval.
	Approvals []common.Hash `json:"approvals"`

	Balance *big.Int `json:"balance"`
}

// MultisigSnapshot is the persisted state of the multisig voting.
type MultisigSnapshot struct {
	Signers SignerSet                        `json:"signers"`
	Epoch   uint64                           `json:"epoch"`
	Votes   map[common.Hash][]common.Address `json:"votes"`
}

package sdk

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Gateway confirms that the relay layer verified an inbound cross-chain call.
type Gateway interface {
	// IsContractCallApproved reports whether a matching approval for commandID is pending
	// without consuming it.
	IsContractCallApproved(
		ctx context.Context,
		commandID common.Hash,
		sourceChain string,
		sourceAddress string,
		contractAddress common.Address,
		payloadHash common.Hash,
	) (bool, error)

	// ValidateContractCall consumes the approval of the call identified by commandID. It returns
	// false when no matching approval exists.
	ValidateContractCall(
		ctx context.Context,
		commandID common.Hash,
		sourceChain string,
		sourceAddress string,
		contractAddress common.Address,
		payloadHash common.Hash,
	) (bool, error)
}

// MessageSender hands an outbound cross-chain call to the relay layer.
type MessageSender interface {
	CallContract(ctx context.Context, destinationChain string, destinationAddress string, payload []byte) error
}

// Package interchain authenticates commands from the trusted remote governance and builds the
// commands it sends.
package interchain

import (
	"github.com/smartcontractkit/interchain-governance/sdk"
	sdkerrors "github.com/smartcontractkit/interchain-governance/sdk/errors"
	"github.com/smartcontractkit/interchain-governance/types"
)

// Authorizer accepts commands only from the configured remote governance.
type Authorizer struct {
	governance types.RemoteGovernance
	decoder    sdk.Decoder
}

// NewAuthorizer returns an Authorizer trusting the given remote governance.
func NewAuthorizer(governance types.RemoteGovernance, decoder sdk.Decoder) *Authorizer {
	return &Authorizer{
		governance: governance,
		decoder:    decoder,
	}
}

// Authenticate checks that the source matches the trusted remote governance exactly and decodes
// the payload. It does not mutate any state.
func (a *Authorizer) Authenticate(sourceChain, sourceAddress string, payload []byte) (types.Command, error) {
	if !a.IsTrusted(sourceChain, sourceAddress) {
		return nil, sdkerrors.NewUnauthorizedError(sourceChain, sourceAddress)
	}

	return a.decoder.DecodeCommand(payload)
}

// IsTrusted reports whether the source is the remote governance. The comparison is byte for byte.
func (a *Authorizer) IsTrusted(sourceChain, sourceAddress string) bool {
	return sourceChain == a.governance.Chain && sourceAddress == a.governance.Address
}

// Governance returns the trusted remote governance.
func (a *Authorizer) Governance() types.RemoteGovernance {
	return a.governance
}

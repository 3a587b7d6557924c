package sdk

import "github.com/smartcontractkit/interchain-governance/types"

// Decoder decodes remote governance payloads into typed commands.
type Decoder interface {
	DecodeCommand(payload []byte) (types.Command, error)
}

package governance

import "github.com/smartcontractkit/interchain-governance/sdk"

// Invoker calls governed targets. A target that calls back into the governance must pass on the
// context it was invoked with, re-entrant calls are then rejected with ErrReentrantCall.
type Invoker = sdk.Invoker

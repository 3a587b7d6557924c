package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Invoker calls a governed target contract. A non-nil error means the target rejected the call.
type Invoker interface {
	Invoke(ctx context.Context, target common.Address, callData []byte, value *big.Int) error
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, target common.Address, callData []byte, value *big.Int) error

// Invoke implements Invoker.
func (f InvokerFunc) Invoke(ctx context.Context, target common.Address, callData []byte, value *big.Int) error {
	return f(ctx, target, callData, value)
}

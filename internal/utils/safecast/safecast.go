// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math/big"

	"github.com/spf13/cast"
)

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for overflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// BigToUint64 safely converts a big.Int to uint64. A nil value converts to zero.
func BigToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, nil
	}

	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return value.Uint64(), nil
}

package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Encode is the equivalent of abi.encode.
// See a full set of examples https://github.com/ethereum/go-ethereum/blob/420b78659bef661a83c5c442121b13f13288c09f/accounts/abi/packing_test.go#L31
func Encode(abiStr string, values ...any) ([]byte, error) {
	// Create a dummy method with arguments
	inDef := fmt.Sprintf(`[{ "name" : "method", "type": "function", "inputs": %s}]`, abiStr)
	inAbi, err := abi.JSON(strings.NewReader(inDef))
	if err != nil {
		return nil, err
	}

	res, err := inAbi.Pack("method", values...)
	if err != nil {
		return nil, err
	}

	return res[4:], nil
}

// Decode is the equivalent of abi.decode.
// See a full set of examples https://github.com/ethereum/go-ethereum/blob/420b78659bef661a83c5c442121b13f13288c09f/accounts/abi/packing_test.go#L31
func Decode(abiStr string, data []byte) ([]any, error) {
	inDef := fmt.Sprintf(`[{ "name" : "method", "type": "function", "outputs": %s}]`, abiStr)
	inAbi, err := abi.JSON(strings.NewReader(inDef))
	if err != nil {
		return nil, err
	}

	return inAbi.Unpack("method", data)
}

// EncodePacked is the equivalent of abi.encodePacked for the subset of types used by the
// governance hashes: address (20 bytes), bytes (raw) and uint256 (32 bytes, big endian).
func EncodePacked(values ...any) ([]byte, error) {
	var out []byte
	for i, v := range values {
		switch value := v.(type) {
		case common.Address:
			out = append(out, value.Bytes()...)
		case []byte:
			out = append(out, value...)
		case *big.Int:
			if value == nil {
				value = new(big.Int)
			}
			if value.Sign() < 0 || value.BitLen() > 256 {
				return nil, fmt.Errorf("value at index %d does not fit in uint256: %s", i, value)
			}
			out = append(out, math.U256Bytes(new(big.Int).Set(value))...)
		default:
			return nil, fmt.Errorf("unsupported packed type at index %d: %T", i, v)
		}
	}

	return out, nil
}

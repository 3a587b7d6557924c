package types //nolint:revive

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidSignerSet = errors.New("invalid signer set")

// SignerSet holds the accounts allowed to vote on multisig operations and the number of distinct
// votes required to reach quorum.
type SignerSet struct {
	// Signers is the ordered list of unique signer accounts.
	Signers []common.Address `json:"signers" yaml:"signers" validate:"required,min=1"`

	// Threshold is the number of distinct signers that must vote for the same operation before it
	// is executed. It must be between 1 and len(Signers).
	Threshold uint64 `json:"threshold" yaml:"threshold" validate:"required,min=1"`
}

// NewSignerSet returns a new signer set with the given signers and threshold and ensures it is
// valid.
func NewSignerSet(signers []common.Address, threshold uint64) (SignerSet, error) {
	set := SignerSet{
		Signers:   slices.Clone(signers),
		Threshold: threshold,
	}

	if err := set.Validate(); err != nil {
		return SignerSet{}, err
	}

	return set, nil
}

// Validate checks that the set is non-empty, duplicate free, contains no zero address and that
// the threshold is within [1, len(Signers)].
func (s *SignerSet) Validate() error {
	if len(s.Signers) == 0 {
		return fmt.Errorf("%w: signer set must have at least one signer", ErrInvalidSignerSet)
	}

	seen := make(map[common.Address]struct{}, len(s.Signers))
	for _, signer := range s.Signers {
		if signer == (common.Address{}) {
			return fmt.Errorf("%w: zero address is not a valid signer", ErrInvalidSignerSet)
		}
		if _, ok := seen[signer]; ok {
			return fmt.Errorf("%w: duplicate signer %s", ErrInvalidSignerSet, signer)
		}
		seen[signer] = struct{}{}
	}

	if s.Threshold == 0 || s.Threshold > uint64(len(s.Signers)) {
		return fmt.Errorf("%w: threshold %d must be between 1 and the number of signers (%d)",
			ErrInvalidSignerSet, s.Threshold, len(s.Signers))
	}

	return nil
}

// Contains reports whether the account is part of the set.
func (s *SignerSet) Contains(account common.Address) bool {
	return slices.Contains(s.Signers, account)
}

// Clone returns a deep copy of the set.
func (s SignerSet) Clone() SignerSet {
	return SignerSet{
		Signers:   slices.Clone(s.Signers),
		Threshold: s.Threshold,
	}
}

// Equals checks if two sets hold the same signers (order doesn't matter) and threshold.
func (s *SignerSet) Equals(other *SignerSet) bool {
	if s.Threshold != other.Threshold {
		return false
	}

	return unorderedArrayEquals(s.Signers, other.Signers)
}

// unorderedArrayEquals checks if two arrays are equal regardless of order.
func unorderedArrayEquals[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	countMap := make(map[T]int)

	// Count occurrences in the first slice
	for _, elem := range a {
		countMap[elem]++
	}

	// Subtract occurrences using the second slice
	for _, elem := range b {
		if countMap[elem] == 0 {
			return false
		}
		countMap[elem]--
	}

	return true
}

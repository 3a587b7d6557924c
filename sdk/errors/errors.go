package sdkerrors

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/interchain-governance/types"
)

// Authorization errors.
var (
	ErrNotSigner    = errors.New("not signer")
	ErrUnauthorized = errors.New("unauthorized remote governance")
)

// Sequencing and state errors.
var (
	ErrAlreadyVoted             = errors.New("already voted")
	ErrTimeLockAlreadyScheduled = errors.New("timelock already scheduled")
	ErrInvalidTimeLockHash      = errors.New("invalid timelock hash")
	ErrNotApproved              = errors.New("multisig proposal not approved")
	ErrNotApprovedByGateway     = errors.New("contract call not approved by gateway")
	ErrReentrantCall            = errors.New("reentrant call")
)

// Validation errors.
var (
	ErrInvalidSignerSet = types.ErrInvalidSignerSet
	ErrInvalidCommand   = errors.New("invalid command")
	ErrInvalidTarget    = errors.New("invalid target")
)

// Timing and execution errors.
var (
	ErrTimeLockNotReady    = errors.New("timelock not ready")
	ErrExecutionFailed     = errors.New("execution failed")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// NotSignerError is returned when an account outside the signer set votes.
type NotSignerError struct {
	Account common.Address
}

func (e *NotSignerError) Error() string {
	return fmt.Sprintf("not signer: %s", e.Account)
}

func (e *NotSignerError) Unwrap() error { return ErrNotSigner }

func NewNotSignerError(account common.Address) *NotSignerError {
	return &NotSignerError{Account: account}
}

// AlreadyVotedError is returned when a signer votes twice on the same operation.
type AlreadyVotedError struct {
	Account common.Address
	Topic   common.Hash
}

func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("already voted: %s on %s", e.Account, e.Topic.Hex())
}

func (e *AlreadyVotedError) Unwrap() error { return ErrAlreadyVoted }

func NewAlreadyVotedError(account common.Address, topic common.Hash) *AlreadyVotedError {
	return &AlreadyVotedError{Account: account, Topic: topic}
}

// UnauthorizedError is returned when a command does not originate from the trusted governance.
type UnauthorizedError struct {
	SourceChain   string
	SourceAddress string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized remote governance: chain %q address %q", e.SourceChain, e.SourceAddress)
}

func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

func NewUnauthorizedError(sourceChain, sourceAddress string) *UnauthorizedError {
	return &UnauthorizedError{SourceChain: sourceChain, SourceAddress: sourceAddress}
}

// InvalidCommandError is returned when a remote payload cannot be decoded into a supported command.
type InvalidCommandError struct {
	Reason string
}

func (e *InvalidCommandError) Error() string {
	return "invalid command: " + e.Reason
}

func (e *InvalidCommandError) Unwrap() error { return ErrInvalidCommand }

func NewInvalidCommandError(reason string) *InvalidCommandError {
	return &InvalidCommandError{Reason: reason}
}

// TimeLockNotReadyError is returned when a timelocked proposal is executed before its ETA.
type TimeLockNotReadyError struct {
	Hash common.Hash
	ETA  uint64
	Now  uint64
}

func (e *TimeLockNotReadyError) Error() string {
	return fmt.Sprintf("timelock not ready: %s eta %d now %d", e.Hash.Hex(), e.ETA, e.Now)
}

func (e *TimeLockNotReadyError) Unwrap() error { return ErrTimeLockNotReady }

func NewTimeLockNotReadyError(hash common.Hash, eta, now uint64) *TimeLockNotReadyError {
	return &TimeLockNotReadyError{Hash: hash, ETA: eta, Now: now}
}

// ExecutionFailedError is returned when the target of a proposal rejects the call.
type ExecutionFailedError struct {
	Target common.Address
	Err    error
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("execution failed: target %s: %v", e.Target, e.Err)
}

// Unwrap exposes both the sentinel and the target error.
func (e *ExecutionFailedError) Unwrap() []error { return []error{ErrExecutionFailed, e.Err} }

func NewExecutionFailedError(target common.Address, err error) *ExecutionFailedError {
	return &ExecutionFailedError{Target: target, Err: err}
}

// InsufficientBalanceError is returned when the governance cannot fund the native value of a call.
type InsufficientBalanceError struct {
	Balance string
	Needed  string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s need %s", e.Balance, e.Needed)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

func NewInsufficientBalanceError(balance, needed string) *InsufficientBalanceError {
	return &InsufficientBalanceError{Balance: balance, Needed: needed}
}

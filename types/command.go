package types

import "fmt"

// CommandType is the tag of a command sent by the remote governance.
type CommandType uint8

const (
	CommandScheduleTimeLockProposal CommandType = iota
	CommandCancelTimeLockProposal
	CommandApproveMultisigProposal
	CommandCancelMultisigApproval
)

var commandTypeNames = map[CommandType]string{
	CommandScheduleTimeLockProposal: "ScheduleTimeLockProposal",
	CommandCancelTimeLockProposal:   "CancelTimeLockProposal",
	CommandApproveMultisigProposal:  "ApproveMultisigProposal",
	CommandCancelMultisigApproval:   "CancelMultisigApproval",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if name, ok := commandTypeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("CommandType(%d)", uint8(c))
}

// IsValid reports whether the tag is a known command.
func (c CommandType) IsValid() bool {
	_, ok := commandTypeNames[c]
	return ok
}

// Command is a decoded, authenticated instruction from the remote governance. The set of
// commands is closed, use a type switch over the concrete types below.
type Command interface {
	Type() CommandType
	GetProposal() Proposal
	isCommand()
}

// ScheduleTimeLock schedules Proposal for execution no earlier than ETA.
type ScheduleTimeLock struct {
	Proposal Proposal
	ETA      uint64
}

// CancelTimeLock clears the timelock of Proposal.
type CancelTimeLock struct {
	Proposal Proposal
}

// ApproveMultisig allows Proposal to be executed once the local signers reach quorum.
type ApproveMultisig struct {
	Proposal Proposal
}

// CancelMultisigApproval removes a pending approval of Proposal.
type CancelMultisigApproval struct {
	Proposal Proposal
}

func (ScheduleTimeLock) Type() CommandType       { return CommandScheduleTimeLockProposal }
func (CancelTimeLock) Type() CommandType         { return CommandCancelTimeLockProposal }
func (ApproveMultisig) Type() CommandType        { return CommandApproveMultisigProposal }
func (CancelMultisigApproval) Type() CommandType { return CommandCancelMultisigApproval }

func (c ScheduleTimeLock) GetProposal() Proposal       { return c.Proposal }
func (c CancelTimeLock) GetProposal() Proposal         { return c.Proposal }
func (c ApproveMultisig) GetProposal() Proposal        { return c.Proposal }
func (c CancelMultisigApproval) GetProposal() Proposal { return c.Proposal }

func (ScheduleTimeLock) isCommand()       {}
func (CancelTimeLock) isCommand()         {}
func (ApproveMultisig) isCommand()        {}
func (CancelMultisigApproval) isCommand() {}

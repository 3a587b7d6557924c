package govctl

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/sdk/evm"
	"github.com/smartcontractkit/interchain-governance/types"
)

// commandTypes maps the --type flag values to command constructors.
var commandTypes = map[string]func(types.Proposal, uint64) types.Command{
	"schedule": func(p types.Proposal, eta uint64) types.Command {
		return types.ScheduleTimeLock{Proposal: p, ETA: eta}
	},
	"cancel": func(p types.Proposal, _ uint64) types.Command {
		return types.CancelTimeLock{Proposal: p}
	},
	"approve": func(p types.Proposal, _ uint64) types.Command {
		return types.ApproveMultisig{Proposal: p}
	},
	"cancel-approval": func(p types.Proposal, _ uint64) types.Command {
		return types.CancelMultisigApproval{Proposal: p}
	},
}

func buildEncodeCommandCmd() *cobra.Command {
	var (
		flags       proposalFlags
		commandType string
		eta         uint64
	)

	cmd := &cobra.Command{
		Use:   "encode-command",
		Short: "Encode a remote governance command payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := commandTypes[commandType]
			if !ok {
				return fmt.Errorf("unknown command type %q", commandType)
			}

			proposal, err := flags.proposal()
			if err != nil {
				return err
			}

			payload, err := evm.NewEncoder().EncodeCommand(build(proposal, eta))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(payload))

			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&commandType, "type", "schedule", "One of schedule, cancel, approve, cancel-approval")
	cmd.Flags().Uint64Var(&eta, "eta", 0, "Unix timestamp before which a scheduled proposal cannot execute")

	return cmd
}

// decodedCommand is the printable form of a decoded command.
type decodedCommand struct {
	Type         string         `json:"type"`
	Target       common.Address `json:"target"`
	CallData     hexutil.Bytes  `json:"callData"`
	NativeValue  string         `json:"nativeValue"`
	ETA          uint64         `json:"eta,omitempty"`
	ProposalHash common.Hash    `json:"proposalHash"`
}

func buildDecodeCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-command <payload>",
		Short: "Decode a hex encoded remote governance command payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := hexutil.Decode(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid payload: %w", err)
			}

			encoder := evm.NewEncoder()
			command, err := encoder.DecodeCommand(payload)
			if err != nil {
				return err
			}

			proposal := command.GetProposal()
			hash, err := encoder.HashProposal(proposal)
			if err != nil {
				return err
			}

			out := decodedCommand{
				Type:         command.Type().String(),
				Target:       proposal.Target,
				CallData:     proposal.CallData,
				NativeValue:  proposal.Value().String(),
				ProposalHash: hash,
			}
			if schedule, ok := command.(types.ScheduleTimeLock); ok {
				out.ETA = schedule.ETA
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

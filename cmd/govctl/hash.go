package govctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/sdk/evm"
)

func buildHashCmd() *cobra.Command {
	var flags proposalFlags

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the proposal hash used as timelock and approval key",
		RunE: func(cmd *cobra.Command, args []string) error {
			proposal, err := flags.proposal()
			if err != nil {
				return err
			}

			hash, err := evm.NewEncoder().HashProposal(proposal)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())

			return err
		},
	}

	flags.register(cmd)

	return cmd
}

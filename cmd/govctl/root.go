// Package govctl implements the govctl command line tool for inspecting governance payloads,
// configuration and persisted state.
package govctl

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/config"
)

func BuildGovctlCmd() *cobra.Command {
	var envFile string

	cmd := cobra.Command{
		Use:           "govctl",
		Short:         "Inspect interchain governance payloads and state",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing env file is not an error, defaults then come from the flags
			if err := config.LoadEnv(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path of the env file holding GOVERNANCE_* defaults")

	cmd.AddCommand(buildHashCmd())
	cmd.AddCommand(buildEncodeCommandCmd())
	cmd.AddCommand(buildDecodeCommandCmd())
	cmd.AddCommand(buildValidateConfigCmd())
	cmd.AddCommand(buildStatusCmd())

	return &cmd
}

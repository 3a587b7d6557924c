package govctl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/config"
)

func buildValidateConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate-config",
		Short: "Validate a governance config file after applying GOVERNANCE_* overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			cfg, err := config.Decode(data, filepath.Ext(configPath))
			if err != nil {
				return err
			}

			if err = config.ApplyEnv(cfg, os.LookupEnv); err != nil {
				return err
			}

			if err = cfg.Validate(); err != nil {
				return err
			}

			delay, err := cfg.MinimumDelaySeconds()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "remote governance: %s/%s\n", cfg.Governance.Chain, cfg.Governance.Address)
			fmt.Fprintf(out, "minimum timelock delay: %ds\n", delay)
			if cfg.Multisig != nil {
				fmt.Fprintf(out, "multisig: %d of %d signers\n", cfg.Multisig.Threshold, len(cfg.Multisig.Signers))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path of the JSON or YAML governance config")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

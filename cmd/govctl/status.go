package govctl

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/store"
)

func buildStatusCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the governance state persisted in a leveldb store",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			db, err := store.OpenLevelDBReadOnly(dbPath)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, db.Close())
			}()

			snapshot, ok, err := db.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no governance state stored")
				return err
			}

			return writeJSON(cmd.OutOrStdout(), snapshot)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path of the leveldb directory")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/interchain-governance/cmd/govctl"
)

func main() {
	rootCmd := govctl.BuildGovctlCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

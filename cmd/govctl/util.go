package govctl

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/interchain-governance/types"
)

// proposalFlags are the flags shared by every command taking a proposal.
type proposalFlags struct {
	target   string
	callData string
	value    string
}

func (f *proposalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "Hex address of the proposal target")
	cmd.Flags().StringVar(&f.callData, "calldata", "0x", "Hex encoded call data")
	cmd.Flags().StringVar(&f.value, "value", "0", "Native value sent with the call, in wei")
	_ = cmd.MarkFlagRequired("target")
}

func (f *proposalFlags) proposal() (types.Proposal, error) {
	if !common.IsHexAddress(f.target) {
		return types.Proposal{}, fmt.Errorf("invalid target %q", f.target)
	}

	callData, err := hexutil.Decode(f.callData)
	if err != nil {
		return types.Proposal{}, fmt.Errorf("invalid calldata: %w", err)
	}

	value, ok := new(big.Int).SetString(f.value, 10)
	if !ok {
		return types.Proposal{}, fmt.Errorf("invalid value %q", f.value)
	}

	return types.NewProposal(common.HexToAddress(f.target), callData, value), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:    "success: encode single uint256",
			giveABI: `[{"type":"uint256"}]`,
			giveValues: []any{
				big.NewInt(30), // 30 in uint256
			},
			want: "000000000000000000000000000000000000000000000000000000000000001e",
		},
		{
			name:       "success: encode address",
			giveABI:    `[{"type":"address"}]`,
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
			want:       "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:       "success: encode calldata bytes",
			giveABI:    `[{"type":"bytes"}]`,
			giveValues: []any{[]byte{0x01, 0x02}},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset
				"0000000000000000000000000000000000000000000000000000000000000002" + // length
				"0102000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:    "success: encode signer list and threshold",
			giveABI: `[{"type":"address[]"},{"type":"uint256"}]`,
			giveValues: []any{
				[]common.Address{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
				big.NewInt(1),
			},
			want: "0000000000000000000000000000000000000000000000000000000000000040" + // offset of the list
				"0000000000000000000000000000000000000000000000000000000000000001" + // threshold
				"0000000000000000000000000000000000000000000000000000000000000001" + // list length
				"0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`, // Invalid ABI type
			wantError: true,
		},
		{
			name:       "failure: invalid values",
			giveABI:    `[{"type":"uint256"}]`,
			giveValues: []any{}, // No values
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveABI, tt.giveValues...)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, hex.EncodeToString(got))
			}
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveABI   string
		giveData  string
		want      []any
		wantError bool
	}{
		{
			name:     "success: decode single uint256",
			giveABI:  `[{"type":"uint256"}]`,
			giveData: "000000000000000000000000000000000000000000000000000000000000001e", // 30 in uint256
			want: []any{
				big.NewInt(30),
			},
		},
		{
			name:     "success: decode address",
			giveABI:  `[{"type":"address"}]`,
			giveData: "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
			want:     []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
		},
		{
			name:    "success: decode tagged calldata",
			giveABI: `[{"type":"uint256"},{"type":"bytes"}]`,
			giveData: "0000000000000000000000000000000000000000000000000000000000000002" + // tag
				"0000000000000000000000000000000000000000000000000000000000000040" + // offset
				"0000000000000000000000000000000000000000000000000000000000000001" + // length
				"0100000000000000000000000000000000000000000000000000000000000000",
			want: []any{big.NewInt(2), []byte{0x01}},
		},
		{
			name:      "failure: invalid data",
			giveABI:   `[{"type":"uint256"}]`,
			giveData:  "00000000000000000000000000000000", // Too short for uint256
			wantError: true,
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`,                                             // Invalid ABI type
			giveData:  "000000000000000000000000000000000000000000000000000000000000001e", // 30 in uint256
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := hex.DecodeString(tt.giveData)
			require.NoError(t, err)

			got, err := Decode(tt.giveABI, data)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_EncodePacked(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")

	tests := []struct {
		name       string
		giveValues []any
		want       string
		wantErr    string
	}{
		{
			name:       "success: address, bytes, uint256",
			giveValues: []any{addr, []byte{0x01, 0x02}, big.NewInt(5)},
			want: "5b38da6a701c568545dcfcb03fcb875f56beddc4" +
				"0102" +
				"0000000000000000000000000000000000000000000000000000000000000005",
		},
		{
			name:       "success: empty bytes and nil value",
			giveValues: []any{addr, []byte{}, (*big.Int)(nil)},
			want: "5b38da6a701c568545dcfcb03fcb875f56beddc4" +
				"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:       "failure: negative value",
			giveValues: []any{big.NewInt(-1)},
			wantErr:    "value at index 0 does not fit in uint256: -1",
		},
		{
			name:       "failure: unsupported type",
			giveValues: []any{"string"},
			wantErr:    "unsupported packed type at index 0: string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := EncodePacked(tt.giveValues...)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, hex.EncodeToString(got))
			}
		})
	}
}

// Package config loads governance deployment configuration from JSON, YAML and environment files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/interchain-governance/types"
)

// Environment variables overriding file values.
const (
	EnvGovernanceChain   = "GOVERNANCE_CHAIN"
	EnvGovernanceAddress = "GOVERNANCE_ADDRESS"
	EnvMinimumDelay      = "GOVERNANCE_MINIMUM_TIMELOCK_DELAY"
	EnvSigners           = "GOVERNANCE_SIGNERS"
	EnvThreshold         = "GOVERNANCE_THRESHOLD"
)

// LookupFunc returns the value of an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load reads the config at path, decoding YAML for .yaml and .yml files and JSON otherwise, and
// validates it.
func Load(path string) (*types.GovernanceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode decodes a config without validating it. ext selects the format.
func Decode(data []byte, ext string) (*types.GovernanceConfig, error) {
	var cfg types.GovernanceConfig

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode yaml config: %w", err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode json config: %w", err)
		}
	}

	return &cfg, nil
}

// LoadEnv loads the .env files into the process environment. Variables already set are kept.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg with the GOVERNANCE_* variables returned by lookup.
func ApplyEnv(cfg *types.GovernanceConfig, lookup LookupFunc) error {
	if v, ok := lookup(EnvGovernanceChain); ok {
		cfg.Governance.Chain = v
	}
	if v, ok := lookup(EnvGovernanceAddress); ok {
		cfg.Governance.Address = v
	}

	if v, ok := lookup(EnvMinimumDelay); ok {
		d, err := types.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMinimumDelay, err)
		}
		cfg.MinimumTimeLockDelay = d
	}

	if v, ok := lookup(EnvSigners); ok {
		signers, err := parseSigners(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSigners, err)
		}
		if cfg.Multisig == nil {
			cfg.Multisig = &types.SignerSet{}
		}
		cfg.Multisig.Signers = signers
	}

	if v, ok := lookup(EnvThreshold); ok {
		threshold, err := cast.ToUint64E(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvThreshold, err)
		}
		if cfg.Multisig == nil {
			cfg.Multisig = &types.SignerSet{}
		}
		cfg.Multisig.Threshold = threshold
	}

	return nil
}

// MapLookup returns a LookupFunc backed by a map, e.g. the result of godotenv.Read.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func parseSigners(v string) ([]common.Address, error) {
	var signers []common.Address
	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !common.IsHexAddress(field) {
			return nil, fmt.Errorf("%q is not a hex address", field)
		}
		signers = append(signers, common.HexToAddress(field))
	}

	return signers, nil
}

package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidGovernanceConfig = errors.New("invalid governance config")

// RemoteGovernance identifies the only remote source whose commands are accepted. Both fields are
// compared byte for byte.
type RemoteGovernance struct {
	Chain   string `json:"chain" yaml:"chain" validate:"required"`
	Address string `json:"address" yaml:"address"`
}

// GovernanceConfig holds the deployment parameters of a governance instance.
type GovernanceConfig struct {
	// Governance is the trusted remote governance.
	Governance RemoteGovernance `json:"governance" yaml:"governance"`

	// MinimumTimeLockDelay is the smallest delay between scheduling and executing a timelocked
	// proposal. It is truncated to whole seconds.
	MinimumTimeLockDelay Duration `json:"minimumTimeLockDelay" yaml:"minimumTimeLockDelay"`

	// Multisig is the initial signer set. Leave empty for an interchain-only deployment.
	Multisig *SignerSet `json:"multisig,omitempty" yaml:"multisig,omitempty"`
}

// Validate runs tag-based validation and checks the semantic constraints of the config.
func (c *GovernanceConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGovernanceConfig, err)
	}

	if c.MinimumTimeLockDelay.Duration < 0 {
		return fmt.Errorf("%w: minimum timelock delay must not be negative", ErrInvalidGovernanceConfig)
	}

	if c.Multisig != nil {
		if err := c.Multisig.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidGovernanceConfig, err)
		}
	}

	return nil
}

// MinimumDelaySeconds returns the minimum timelock delay in whole seconds.
func (c *GovernanceConfig) MinimumDelaySeconds() (uint64, error) {
	return c.MinimumTimeLockDelay.Seconds()
}

package config

import (
	"fmt"
	"time"
)

// GovernanceConfig seeds the governance params document on first boot and
// sets the floor for timelock scheduling. Threshold and treasury changes
// after boot go through the timelocked admin endpoints.
type GovernanceConfig struct {
	InitialApprovalThreshold uint32        `mapstructure:"initial-approval-threshold"`
	TreasuryAddress          string        `mapstructure:"treasury-address"`
	MinTimelockDelay         time.Duration `mapstructure:"min-timelock-delay"`
}

func (cfg *GovernanceConfig) Validate() error {
	if cfg.InitialApprovalThreshold == 0 {
		return fmt.Errorf("initial approval threshold must be a positive integer")
	}

	if cfg.TreasuryAddress == "" {
		return fmt.Errorf("missing treasury address")
	}

	if cfg.MinTimelockDelay <= 0 {
		return fmt.Errorf("min timelock delay must be positive")
	}

	return nil
}

package config

import (
	"fmt"
	"time"
)

// StakingConfig bounds what a single deposit may look like. The bounds are
// static deployment parameters; the slash approval threshold is runtime
// state and lives in the governance params document instead.
type StakingConfig struct {
	MinStakeDuration time.Duration `mapstructure:"min-stake-duration"`
	MaxStakeDuration time.Duration `mapstructure:"max-stake-duration"`
	MaxStakeAmount   uint64        `mapstructure:"max-stake-amount"`
}

func (cfg *StakingConfig) Validate() error {
	if cfg.MinStakeDuration <= 0 {
		return fmt.Errorf("min stake duration must be positive")
	}

	if cfg.MaxStakeDuration < cfg.MinStakeDuration {
		return fmt.Errorf("max stake duration must not be less than min stake duration")
	}

	if cfg.MaxStakeAmount == 0 {
		return fmt.Errorf("max stake amount must be positive")
	}

	return nil
}

package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/types"
)

type GovernanceParamsPublic struct {
	SlashApprovalThreshold uint32 `json:"slash_approval_threshold"`
	TreasuryAddress        string `json:"treasury_address"`
	MinStakeDuration       int64  `json:"min_stake_duration_seconds"`
	MaxStakeDuration       int64  `json:"max_stake_duration_seconds"`
	MaxStakeAmount         uint64 `json:"max_stake_amount"`
}

// GetGovernanceParams merges the mutable governance state held in the
// database with the static staking limits from configuration.
func (s *Services) GetGovernanceParams(ctx context.Context) (*GovernanceParamsPublic, *types.Error) {
	doc, err := s.DbClient.GetGovernanceParams(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to read governance params")
		return nil, types.NewInternalServiceError(err)
	}
	return &GovernanceParamsPublic{
		SlashApprovalThreshold: doc.SlashApprovalThreshold,
		TreasuryAddress:        doc.TreasuryAddress,
		MinStakeDuration:       int64(s.cfg.Staking.MinStakeDuration.Seconds()),
		MaxStakeDuration:       int64(s.cfg.Staking.MaxStakeDuration.Seconds()),
		MaxStakeAmount:         s.cfg.Staking.MaxStakeAmount,
	}, nil
}

package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

// ProcessBalanceUpdate mirrors an absolute balance snapshot from the asset
// ledger. Snapshots are last write wins; an older snapshot arriving late
// overwrites a newer one, which the upstream ledger compensates for by
// republishing on every change.
func (s *Services) ProcessBalanceUpdate(ctx context.Context, event queueclient.BalanceUpdateEvent, updatedAt int64) *types.Error {
	if !utils.IsValidAddress(event.AccountAddress) || !utils.IsValidAssetID(event.AssetID) {
		log.Ctx(ctx).Warn().
			Str("accountAddress", event.AccountAddress).
			Str("assetId", event.AssetID).
			Msg("balance update event has malformed identifiers")
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "malformed balance update identifiers")
	}

	err := s.DbClient.UpsertAssetBalance(ctx, event.AccountAddress, event.AssetID, event.Balance, updatedAt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to upsert mirrored asset balance")
		return types.NewInternalServiceError(err)
	}
	return nil
}

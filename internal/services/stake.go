package services

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/db"
	"github.com/corestake/staking-governance-service/internal/db/model"
	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/types"
)

type StakePositionPublic struct {
	StakerAddress   string `json:"staker_address"`
	AssetID         string `json:"asset_id"`
	Amount          uint64 `json:"amount"`
	StartTimestamp  int64  `json:"start_timestamp"`
	DurationSeconds int64  `json:"duration_seconds"`
	Active          bool   `json:"active"`
}

func fromStakePositionDocument(d model.StakePositionDocument) StakePositionPublic {
	return StakePositionPublic{
		StakerAddress:   d.StakerAddress,
		AssetID:         d.AssetID,
		Amount:          d.Amount,
		StartTimestamp:  d.StartTimestamp,
		DurationSeconds: d.DurationSeconds,
		Active:          d.Active,
	}
}

// Deposit locks an amount of an asset into a stake position. Validation
// happens before any write; the balance check and the position write are
// atomic in the db layer, so a failed precondition never leaves partial
// state behind.
func (s *Services) Deposit(
	ctx context.Context, stakerAddress, assetID string, amount uint64, durationSeconds int64,
) *types.Error {
	if err := s.validateStakeAmount(amount); err != nil {
		return err
	}
	if err := s.validateStakeDuration(durationSeconds); err != nil {
		return err
	}

	if err := s.ensureBalanceMirror(ctx, stakerAddress, assetID); err != nil {
		return err
	}

	now := time.Now().Unix()
	err := s.DbClient.SaveStakePosition(ctx, stakerAddress, assetID, amount, durationSeconds, now)
	if err != nil {
		return s.mapStakeWriteError(ctx, err)
	}

	s.emitEvent(ctx, s.stakeEventsClient, queueclient.NewStakeCreatedEvent(
		stakerAddress, assetID, amount, durationSeconds, now,
	))
	return nil
}

// BatchDeposit applies a list of deposits described by three parallel
// arrays. The whole batch commits or none of it does. Balance requirements
// for assets that repeat within the batch are summed up front and checked
// against one snapshot, so an entry can never spend a balance twice.
func (s *Services) BatchDeposit(
	ctx context.Context, stakerAddress string, assetIDs []string, amounts []uint64, durations []int64,
) *types.Error {
	if len(assetIDs) != len(amounts) || len(assetIDs) != len(durations) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.LengthMismatch, "asset, amount and duration lists must have equal length",
		)
	}
	if len(assetIDs) == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "batch must not be empty")
	}

	entries := make([]db.StakeEntry, 0, len(assetIDs))
	for i := range assetIDs {
		if err := s.validateStakeAmount(amounts[i]); err != nil {
			return err
		}
		if err := s.validateStakeDuration(durations[i]); err != nil {
			return err
		}
		entries = append(entries, db.StakeEntry{
			AssetID:         assetIDs[i],
			Amount:          amounts[i],
			DurationSeconds: durations[i],
		})
	}

	required, reqErr := aggregateRequiredBalances(entries)
	if reqErr != nil {
		return reqErr
	}

	for assetID := range required {
		if err := s.ensureBalanceMirror(ctx, stakerAddress, assetID); err != nil {
			return err
		}
	}

	now := time.Now().Unix()
	err := s.DbClient.SaveStakePositions(ctx, stakerAddress, entries, required, now)
	if err != nil {
		return s.mapStakeWriteError(ctx, err)
	}

	for _, entry := range entries {
		s.emitEvent(ctx, s.stakeEventsClient, queueclient.NewStakeCreatedEvent(
			stakerAddress, entry.AssetID, entry.Amount, entry.DurationSeconds, now,
		))
	}
	return nil
}

func (s *Services) StakePositionsByStaker(
	ctx context.Context, stakerAddress string, pageToken string,
) ([]StakePositionPublic, string, *types.Error) {
	resultMap, err := s.DbClient.FindStakePositionsByStaker(ctx, stakerAddress, pageToken)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("Invalid pagination token when fetching stake positions")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("Failed to find stake positions by staker")
		return nil, "", types.NewInternalServiceError(err)
	}
	var positions []StakePositionPublic
	for _, d := range resultMap.Data {
		positions = append(positions, fromStakePositionDocument(d))
	}
	return positions, resultMap.PaginationToken, nil
}

func (s *Services) validateStakeAmount(amount uint64) *types.Error {
	if amount == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "amount must be positive")
	}
	if amount > s.cfg.Staking.MaxStakeAmount {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "amount exceeds the maximum stake amount")
	}
	return nil
}

func (s *Services) validateStakeDuration(durationSeconds int64) *types.Error {
	duration := time.Duration(durationSeconds) * time.Second
	if duration < s.cfg.Staking.MinStakeDuration || duration > s.cfg.Staking.MaxStakeDuration {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.DurationOutOfRange, "duration is outside the allowed staking window",
		)
	}
	return nil
}

// aggregateRequiredBalances sums the amounts per asset so that a batch
// referencing the same asset twice is checked against the total, not against
// the same balance twice.
func aggregateRequiredBalances(entries []db.StakeEntry) (map[string]uint64, *types.Error) {
	required := make(map[string]uint64, len(entries))
	for _, entry := range entries {
		if required[entry.AssetID] > math.MaxUint64-entry.Amount {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.InvalidAmount, "batch amounts overflow for asset "+entry.AssetID,
			)
		}
		required[entry.AssetID] += entry.Amount
	}
	return required, nil
}

// ensureBalanceMirror backfills the local balance mirror from the upstream
// asset ledger when the account/asset pair has never been seen. A missing
// upstream balance is left missing; the deposit will then fail the balance
// check with no state written.
func (s *Services) ensureBalanceMirror(ctx context.Context, accountAddress, assetID string) *types.Error {
	_, err := s.DbClient.FindAssetBalance(ctx, accountAddress, assetID)
	if err == nil {
		return nil
	}
	if !db.IsNotFoundError(err) {
		log.Ctx(ctx).Error().Err(err).Msg("error while reading asset balance mirror")
		return types.NewInternalServiceError(err)
	}

	balance, clientErr := s.Clients.AssetLedger.GetBalance(ctx, accountAddress, assetID)
	if clientErr != nil {
		if clientErr.StatusCode == http.StatusNotFound {
			return nil
		}
		return clientErr
	}

	upsertErr := s.DbClient.UpsertAssetBalance(ctx, accountAddress, assetID, balance.Balance, time.Now().Unix())
	if upsertErr != nil {
		log.Ctx(ctx).Error().Err(upsertErr).Msg("failed to backfill asset balance mirror")
		return types.NewInternalServiceError(upsertErr)
	}
	return nil
}

func (s *Services) mapStakeWriteError(ctx context.Context, err error) *types.Error {
	switch {
	case db.IsInsufficientBalanceError(err):
		log.Ctx(ctx).Warn().Err(err).Msg("deposit rejected, ledger balance does not cover the amount")
		return types.NewError(http.StatusForbidden, types.InsufficientBalance, err)
	case db.IsStakeActiveError(err):
		log.Ctx(ctx).Warn().Err(err).Msg("deposit rejected, stake position is still active")
		return types.NewError(http.StatusForbidden, types.StakeAlreadyActive, err)
	default:
		log.Ctx(ctx).Error().Err(err).Msg("failed to save stake position")
		return types.NewInternalServiceError(err)
	}
}

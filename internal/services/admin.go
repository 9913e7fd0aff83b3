package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/db"
	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

// GrantRole adds an account to the access registry under the given role.
// Only admins may grant roles. Granting a role the account already holds is
// rejected rather than silently absorbed.
func (s *Services) GrantRole(ctx context.Context, adminAddress string, role types.Role, accountAddress string) *types.Error {
	if err := s.requireRole(ctx, types.RoleAdmin, adminAddress); err != nil {
		return err
	}
	if !utils.IsValidAddress(accountAddress) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid account address")
	}

	err := s.DbClient.GrantRole(ctx, role.ToString(), accountAddress, time.Now().Unix())
	if err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusForbidden, types.Forbidden, "account already holds the role",
			)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to grant role")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// RevokeRole removes a role from an account. Revoking a role the account
// never held returns not found.
func (s *Services) RevokeRole(ctx context.Context, adminAddress string, role types.Role, accountAddress string) *types.Error {
	if err := s.requireRole(ctx, types.RoleAdmin, adminAddress); err != nil {
		return err
	}

	err := s.DbClient.RevokeRole(ctx, role.ToString(), accountAddress)
	if err != nil {
		if db.IsNotFoundError(err) {
			return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "account does not hold the role")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to revoke role")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// ScheduleTimelockOperation arms the timelock for a privileged operation.
// The maturity is computed server side from the configured minimum delay;
// callers cannot shorten it. Rescheduling an already armed tag restarts the
// clock.
func (s *Services) ScheduleTimelockOperation(
	ctx context.Context, adminAddress string, operationTag types.OperationTag,
) (int64, *types.Error) {
	if err := s.requireRole(ctx, types.RoleAdmin, adminAddress); err != nil {
		return 0, err
	}
	if !types.KnownOperationTag(operationTag) {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "unknown timelock operation")
	}

	now := time.Now()
	maturesAt := now.Add(s.cfg.Governance.MinTimelockDelay).Unix()
	err := s.DbClient.ScheduleTimelock(ctx, string(operationTag), maturesAt, now.Unix(), adminAddress)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to schedule timelock")
		return 0, types.NewInternalServiceError(err)
	}
	return maturesAt, nil
}

// UpdateTreasuryAddress applies a treasury change behind the timelock. The
// guard and the update share one transaction, so a consumed schedule always
// corresponds to an applied change.
func (s *Services) UpdateTreasuryAddress(ctx context.Context, adminAddress, treasuryAddress string) *types.Error {
	if err := s.requireRole(ctx, types.RoleAdmin, adminAddress); err != nil {
		return err
	}
	if !utils.IsValidAddress(treasuryAddress) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "invalid treasury address")
	}

	now := time.Now().Unix()
	err := s.DbClient.UpdateTreasuryAddress(ctx, treasuryAddress, now)
	if err != nil {
		return s.mapTimelockError(ctx, err)
	}

	s.emitEvent(ctx, s.slashEventsClient, queueclient.NewTreasuryUpdatedEvent(
		treasuryAddress, adminAddress, now,
	))
	return nil
}

// UpdateSlashApprovalThreshold applies a threshold change behind the
// timelock. Open proposals keep the threshold they snapshotted at creation.
func (s *Services) UpdateSlashApprovalThreshold(ctx context.Context, adminAddress string, threshold uint32) *types.Error {
	if err := s.requireRole(ctx, types.RoleAdmin, adminAddress); err != nil {
		return err
	}
	if threshold == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "approval threshold must be positive")
	}

	err := s.DbClient.UpdateSlashApprovalThreshold(ctx, threshold, time.Now().Unix())
	if err != nil {
		return s.mapTimelockError(ctx, err)
	}
	return nil
}

func (s *Services) mapTimelockError(ctx context.Context, err error) *types.Error {
	switch {
	case db.IsTimelockNotScheduledError(err):
		return types.NewError(http.StatusForbidden, types.TimelockNotScheduled, err)
	case db.IsTimelockNotMaturedError(err):
		return types.NewError(http.StatusForbidden, types.TimelockNotMatured, err)
	default:
		log.Ctx(ctx).Error().Err(err).Msg("failed to apply timelocked governance update")
		return types.NewInternalServiceError(err)
	}
}

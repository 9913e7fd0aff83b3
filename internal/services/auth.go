package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/types"
)

// AuthDecision is the outcome of an authorization check. Denials carry the
// reason so callers can surface it without re-querying the registry.
type AuthDecision struct {
	Authorized bool
	Reason     string
}

func authorized() AuthDecision {
	return AuthDecision{Authorized: true}
}

func denied(reason string) AuthDecision {
	return AuthDecision{Authorized: false, Reason: reason}
}

// Authorize evaluates whether an account holds the given capability role.
// Every mutating entry point runs this before touching any state.
func (s *Services) Authorize(ctx context.Context, role types.Role, accountAddress string) (AuthDecision, *types.Error) {
	hasRole, err := s.DbClient.HasRole(ctx, role.ToString(), accountAddress)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("role", role.ToString()).Msg("error while checking role membership")
		return denied("access registry unavailable"), types.NewInternalServiceError(err)
	}
	if !hasRole {
		return denied(fmt.Sprintf("account does not hold the %s role", role)), nil
	}
	return authorized(), nil
}

// requireRole folds an authorization denial into the error taxonomy: the
// call is rejected with no state change.
func (s *Services) requireRole(ctx context.Context, role types.Role, accountAddress string) *types.Error {
	decision, err := s.Authorize(ctx, role, accountAddress)
	if err != nil {
		return err
	}
	if !decision.Authorized {
		log.Ctx(ctx).Warn().Str("role", role.ToString()).Str("account", accountAddress).
			Msg("request rejected by authorization check")
		return types.NewErrorWithMsg(http.StatusForbidden, types.Unauthorized, decision.Reason)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/db"
	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/observability/metrics"
	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/types"
)

type SlashProposalPublic struct {
	ProposalID        int64                `json:"proposal_id"`
	StakerAddress     string               `json:"staker_address"`
	AssetID           string               `json:"asset_id"`
	SlashAmount       uint64               `json:"slash_amount"`
	ProposerAddress   string               `json:"proposer_address"`
	ProposedAt        int64                `json:"proposed_at"`
	ApprovalThreshold uint32               `json:"approval_threshold"`
	Approvals         uint32               `json:"approvals"`
	ApprovedBy        []string             `json:"approved_by"`
	Status            types.ProposalStatus `json:"status"`
}

func fromSlashProposalDocument(d model.SlashProposalDocument) SlashProposalPublic {
	return SlashProposalPublic{
		ProposalID:        d.ProposalID,
		StakerAddress:     d.StakerAddress,
		AssetID:           d.AssetID,
		SlashAmount:       d.SlashAmount,
		ProposerAddress:   d.ProposerAddress,
		ProposedAt:        d.ProposedAt,
		ApprovalThreshold: d.ApprovalThreshold,
		Approvals:         d.Approvals,
		ApprovedBy:        d.ApprovedBy,
		Status:            d.Status,
	}
}

// ProposeSlash opens a slash proposal against a staker's position. Only
// accounts holding the validator role may propose. The approval threshold in
// force at proposal time is snapshotted onto the proposal, so a later
// threshold change never moves the goalposts of an open vote.
func (s *Services) ProposeSlash(
	ctx context.Context, proposerAddress, stakerAddress, assetID string, slashAmount uint64, supersede bool,
) (*SlashProposalPublic, *types.Error) {
	if err := s.requireRole(ctx, types.RoleValidator, proposerAddress); err != nil {
		return nil, err
	}
	if slashAmount == 0 {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "slash amount must be positive")
	}

	position, posErr := s.DbClient.FindStakePositionByKey(ctx, stakerAddress, assetID)
	if posErr != nil {
		if db.IsNotFoundError(posErr) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound, types.StakeNotFound, "no stake position exists for the staker and asset",
			)
		}
		log.Ctx(ctx).Error().Err(posErr).Msg("failed to look up stake position for slash proposal")
		return nil, types.NewInternalServiceError(posErr)
	}
	if !position.Active {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.StakeNotFound, "stake position is no longer active",
		)
	}
	if slashAmount > position.Amount {
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.InsufficientStakedAmount, "slash amount exceeds the staked amount",
		)
	}

	doc, err := s.DbClient.CreateSlashProposal(
		ctx, stakerAddress, assetID, slashAmount, proposerAddress, supersede, time.Now().Unix(),
	)
	if err != nil {
		if db.IsProposalOpenError(err) {
			return nil, types.NewError(http.StatusForbidden, types.ProposalAlreadyOpen, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to create slash proposal")
		return nil, types.NewInternalServiceError(err)
	}

	s.emitEvent(ctx, s.slashEventsClient, queueclient.NewSlashProposedEvent(
		doc.ProposalID, doc.StakerAddress, doc.AssetID, doc.SlashAmount, doc.ProposerAddress,
	))

	public := fromSlashProposalDocument(*doc)
	return &public, nil
}

// ApproveSlash records a validator's approval on an open proposal. The
// approval that reaches the snapshotted threshold also executes the slash in
// the same transaction; if the penalty cannot be applied the approval is
// rolled back with it.
func (s *Services) ApproveSlash(
	ctx context.Context, approverAddress string, proposalID int64,
) (*SlashProposalPublic, *types.Error) {
	if err := s.requireRole(ctx, types.RoleValidator, approverAddress); err != nil {
		return nil, err
	}

	doc, executed, err := s.DbClient.ApproveSlashProposal(ctx, proposalID, approverAddress)
	if err != nil {
		return nil, s.mapApprovalError(ctx, err)
	}

	s.emitEvent(ctx, s.slashEventsClient, queueclient.NewSlashApprovedEvent(
		doc.ProposalID, approverAddress, doc.Approvals, doc.ApprovalThreshold,
	))
	if executed {
		metrics.RecordSlashProposalExecuted()
		s.emitEvent(ctx, s.slashEventsClient, queueclient.NewSlashExecutedEvent(
			doc.ProposalID, doc.StakerAddress, doc.AssetID, doc.SlashAmount,
		))
	}

	public := fromSlashProposalDocument(*doc)
	return &public, nil
}

func (s *Services) SlashProposals(
	ctx context.Context, assetID string, pageToken string,
) ([]SlashProposalPublic, string, *types.Error) {
	resultMap, err := s.DbClient.FindSlashProposals(ctx, assetID, pageToken)
	if err != nil {
		if db.IsInvalidPaginationTokenError(err) {
			log.Ctx(ctx).Warn().Err(err).Msg("Invalid pagination token when fetching slash proposals")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Msg("Failed to find slash proposals")
		return nil, "", types.NewInternalServiceError(err)
	}
	var proposals []SlashProposalPublic
	for _, d := range resultMap.Data {
		proposals = append(proposals, fromSlashProposalDocument(d))
	}
	return proposals, resultMap.PaginationToken, nil
}

func (s *Services) mapApprovalError(ctx context.Context, err error) *types.Error {
	switch {
	case db.IsNotFoundError(err):
		return types.NewError(http.StatusNotFound, types.ProposalNotFound, err)
	case db.IsProposalClosedError(err):
		var closedErr *db.ProposalClosedError
		if errors.As(err, &closedErr) && closedErr.Status == types.ProposalSuperseded {
			return types.NewError(http.StatusForbidden, types.ProposalWasSuperseded, err)
		}
		return types.NewError(http.StatusForbidden, types.ProposalAlreadyExecuted, err)
	case db.IsAlreadyApprovedError(err):
		return types.NewError(http.StatusForbidden, types.AlreadyApproved, err)
	case db.IsStakeNotFoundError(err):
		return types.NewError(http.StatusForbidden, types.StakeNotFound, err)
	case db.IsInsufficientStakeError(err):
		return types.NewError(http.StatusForbidden, types.InsufficientStakedAmount, err)
	default:
		log.Ctx(ctx).Error().Err(err).Msg("failed to approve slash proposal")
		return types.NewInternalServiceError(err)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

type ProposeSlashRequestPayload struct {
	ProposerAddress string `json:"proposer_address"`
	StakerAddress   string `json:"staker_address"`
	AssetID         string `json:"asset_id"`
	SlashAmount     uint64 `json:"slash_amount"`
	Supersede       bool   `json:"supersede"`
}

func parseProposeSlashRequestPayload(request *http.Request) (*ProposeSlashRequestPayload, *types.Error) {
	payload := &ProposeSlashRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.ProposerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid proposer address",
		)
	}
	if !utils.IsValidAddress(payload.StakerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid staker address",
		)
	}
	if !utils.IsValidAssetID(payload.AssetID) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid asset id",
		)
	}

	return payload, nil
}

type ApproveSlashRequestPayload struct {
	ApproverAddress string `json:"approver_address"`
	ProposalID      int64  `json:"proposal_id"`
}

func parseApproveSlashRequestPayload(request *http.Request) (*ApproveSlashRequestPayload, *types.Error) {
	payload := &ApproveSlashRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.ApproverAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid approver address",
		)
	}
	if payload.ProposalID <= 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid proposal id",
		)
	}

	return payload, nil
}

// ProposeSlash godoc
// @Summary Propose a slash
// @Description Opens a slash proposal against a staker's position. The caller must hold the validator role.
// @Accept json
// @Produce json
// @Param payload body ProposeSlashRequestPayload true "Propose Slash Request Payload"
// @Success 201 {object} PublicResponse[services.SlashProposalPublic] "The opened proposal"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not a validator or a proposal is already open"
// @Router /v1/slash/propose [post]
func (h *Handler) ProposeSlash(request *http.Request) (*Result, *types.Error) {
	payload, err := parseProposeSlashRequestPayload(request)
	if err != nil {
		return nil, err
	}

	proposal, proposeErr := h.services.ProposeSlash(
		request.Context(), payload.ProposerAddress, payload.StakerAddress,
		payload.AssetID, payload.SlashAmount, payload.Supersede,
	)
	if proposeErr != nil {
		return nil, proposeErr
	}

	res := &PublicResponse[any]{Data: proposal}
	return &Result{Data: res, Status: http.StatusCreated}, nil
}

// ApproveSlash godoc
// @Summary Approve a slash proposal
// @Description Records a validator's approval on an open proposal. The approval that reaches the threshold executes the slash atomically.
// @Accept json
// @Produce json
// @Param payload body ApproveSlashRequestPayload true "Approve Slash Request Payload"
// @Success 200 {object} PublicResponse[services.SlashProposalPublic] "The proposal after the approval"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not a validator, already approved, or the proposal is closed"
// @Failure 404 {object} types.Error "Proposal not found"
// @Router /v1/slash/approve [post]
func (h *Handler) ApproveSlash(request *http.Request) (*Result, *types.Error) {
	payload, err := parseApproveSlashRequestPayload(request)
	if err != nil {
		return nil, err
	}

	proposal, approveErr := h.services.ApproveSlash(
		request.Context(), payload.ApproverAddress, payload.ProposalID,
	)
	if approveErr != nil {
		return nil, approveErr
	}

	return NewResult(proposal), nil
}

// GetSlashProposals godoc
// @Summary Get slash proposals
// @Description Retrieves slash proposals, most recent first, optionally filtered by asset
// @Produce json
// @Param asset_id query string false "Filter proposals by asset id"
// @Param pagination_key query string false "Pagination key to fetch the next page of proposals"
// @Success 200 {object} PublicResponse[[]services.SlashProposalPublic] "List of proposals and pagination token"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/slash/proposals [get]
func (h *Handler) GetSlashProposals(request *http.Request) (*Result, *types.Error) {
	assetID := request.URL.Query().Get("asset_id")
	if assetID != "" && !utils.IsValidAssetID(assetID) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid asset id")
	}

	paginationKey := request.URL.Query().Get("pagination_key")

	proposals, newPaginationKey, err := h.services.SlashProposals(request.Context(), assetID, paginationKey)
	if err != nil {
		return nil, err
	}

	return NewResultWithPagination(proposals, newPaginationKey), nil
}

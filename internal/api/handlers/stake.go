package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

type DepositRequestPayload struct {
	StakerAddress   string `json:"staker_address"`
	AssetID         string `json:"asset_id"`
	Amount          uint64 `json:"amount"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func parseDepositRequestPayload(request *http.Request) (*DepositRequestPayload, *types.Error) {
	payload := &DepositRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
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

type BatchDepositRequestPayload struct {
	StakerAddress string   `json:"staker_address"`
	AssetIDs      []string `json:"asset_ids"`
	Amounts       []uint64 `json:"amounts"`
	Durations     []int64  `json:"durations"`
}

func parseBatchDepositRequestPayload(request *http.Request) (*BatchDepositRequestPayload, *types.Error) {
	payload := &BatchDepositRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.StakerAddress) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid staker address",
		)
	}
	for _, assetID := range payload.AssetIDs {
		if !utils.IsValidAssetID(assetID) {
			return nil, types.NewErrorWithMsg(
				http.StatusBadRequest, types.BadRequest, "invalid asset id",
			)
		}
	}

	return payload, nil
}

// Deposit godoc
// @Summary Stake an asset
// @Description Locks an amount of an asset into a stake position for the given duration.
// @Accept json
// @Produce json
// @Param payload body DepositRequestPayload true "Deposit Request Payload"
// @Success 201 "The stake position was created"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Insufficient balance or active position"
// @Router /v1/stake [post]
func (h *Handler) Deposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositRequestPayload(request)
	if err != nil {
		return nil, err
	}

	depositErr := h.services.Deposit(
		request.Context(), payload.StakerAddress, payload.AssetID,
		payload.Amount, payload.DurationSeconds,
	)
	if depositErr != nil {
		return nil, depositErr
	}

	return &Result{Status: http.StatusCreated}, nil
}

// BatchDeposit godoc
// @Summary Stake multiple assets atomically
// @Description Locks a batch of deposits described by parallel asset, amount and duration lists. The whole batch commits or none of it does.
// @Accept json
// @Produce json
// @Param payload body BatchDepositRequestPayload true "Batch Deposit Request Payload"
// @Success 201 "All stake positions were created"
// @Failure 400 {object} types.Error "Invalid request payload or mismatched list lengths"
// @Failure 403 {object} types.Error "Insufficient balance or active position"
// @Router /v1/stake/batch [post]
func (h *Handler) BatchDeposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseBatchDepositRequestPayload(request)
	if err != nil {
		return nil, err
	}

	depositErr := h.services.BatchDeposit(
		request.Context(), payload.StakerAddress,
		payload.AssetIDs, payload.Amounts, payload.Durations,
	)
	if depositErr != nil {
		return nil, depositErr
	}

	return &Result{Status: http.StatusCreated}, nil
}

// GetStakePositions godoc
// @Summary Get stake positions
// @Description Retrieves stake positions for a given staker
// @Produce json
// @Param staker_address query string true "Staker address"
// @Param pagination_key query string false "Pagination key to fetch the next page of positions"
// @Success 200 {object} PublicResponse[[]services.StakePositionPublic] "List of stake positions and pagination token"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/stake/positions [get]
func (h *Handler) GetStakePositions(request *http.Request) (*Result, *types.Error) {
	stakerAddress, err := parseAddressQuery(request, "staker_address")
	if err != nil {
		return nil, err
	}

	paginationKey := request.URL.Query().Get("pagination_key")

	positions, newPaginationKey, err := h.services.StakePositionsByStaker(request.Context(), stakerAddress, paginationKey)
	if err != nil {
		return nil, err
	}

	return NewResultWithPagination(positions, newPaginationKey), nil
}

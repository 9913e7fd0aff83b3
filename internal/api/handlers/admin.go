package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

type RoleRequestPayload struct {
	AdminAddress   string `json:"admin_address"`
	Role           string `json:"role"`
	AccountAddress string `json:"account_address"`
}

func parseRoleRequestPayload(request *http.Request) (*RoleRequestPayload, types.Role, *types.Error) {
	payload := &RoleRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.AdminAddress) {
		return nil, "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid admin address",
		)
	}
	if !utils.IsValidAddress(payload.AccountAddress) {
		return nil, "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid account address",
		)
	}
	role := types.RoleFromString(payload.Role)
	if role == "" {
		return nil, "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "unknown role")
	}

	return payload, role, nil
}

type ScheduleTimelockRequestPayload struct {
	AdminAddress string `json:"admin_address"`
	OperationTag string `json:"operation_tag"`
}

type ScheduleTimelockResponse struct {
	OperationTag string `json:"operation_tag"`
	MaturesAt    int64  `json:"matures_at"`
}

type UpdateTreasuryRequestPayload struct {
	AdminAddress    string `json:"admin_address"`
	TreasuryAddress string `json:"treasury_address"`
}

type UpdateThresholdRequestPayload struct {
	AdminAddress string `json:"admin_address"`
	Threshold    uint32 `json:"threshold"`
}

// GrantRole godoc
// @Summary Grant a role
// @Description Adds an account to the access registry under the given role. Admin only.
// @Accept json
// @Produce json
// @Param payload body RoleRequestPayload true "Role Request Payload"
// @Success 201 "The role was granted"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not an admin or the account already holds the role"
// @Router /v1/admin/roles/grant [post]
func (h *Handler) GrantRole(request *http.Request) (*Result, *types.Error) {
	payload, role, err := parseRoleRequestPayload(request)
	if err != nil {
		return nil, err
	}

	grantErr := h.services.GrantRole(request.Context(), payload.AdminAddress, role, payload.AccountAddress)
	if grantErr != nil {
		return nil, grantErr
	}

	return &Result{Status: http.StatusCreated}, nil
}

// RevokeRole godoc
// @Summary Revoke a role
// @Description Removes a role from an account. Admin only.
// @Accept json
// @Produce json
// @Param payload body RoleRequestPayload true "Role Request Payload"
// @Success 200 "The role was revoked"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not an admin"
// @Failure 404 {object} types.Error "The account does not hold the role"
// @Router /v1/admin/roles/revoke [post]
func (h *Handler) RevokeRole(request *http.Request) (*Result, *types.Error) {
	payload, role, err := parseRoleRequestPayload(request)
	if err != nil {
		return nil, err
	}

	revokeErr := h.services.RevokeRole(request.Context(), payload.AdminAddress, role, payload.AccountAddress)
	if revokeErr != nil {
		return nil, revokeErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// ScheduleTimelock godoc
// @Summary Arm the timelock for a privileged operation
// @Description Schedules a timelocked operation. The maturity time is computed from the configured minimum delay. Admin only.
// @Accept json
// @Produce json
// @Param payload body ScheduleTimelockRequestPayload true "Schedule Timelock Request Payload"
// @Success 200 {object} PublicResponse[ScheduleTimelockResponse] "The armed schedule"
// @Failure 400 {object} types.Error "Invalid request payload or unknown operation"
// @Failure 403 {object} types.Error "Caller is not an admin"
// @Router /v1/admin/timelock/schedule [post]
func (h *Handler) ScheduleTimelock(request *http.Request) (*Result, *types.Error) {
	payload := &ScheduleTimelockRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.AdminAddress) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid admin address")
	}

	maturesAt, scheduleErr := h.services.ScheduleTimelockOperation(
		request.Context(), payload.AdminAddress, types.OperationTag(payload.OperationTag),
	)
	if scheduleErr != nil {
		return nil, scheduleErr
	}

	return NewResult(ScheduleTimelockResponse{
		OperationTag: payload.OperationTag,
		MaturesAt:    maturesAt,
	}), nil
}

// UpdateTreasury godoc
// @Summary Update the treasury address
// @Description Applies a treasury change behind the timelock. The matching schedule must have matured and is consumed. Admin only.
// @Accept json
// @Produce json
// @Param payload body UpdateTreasuryRequestPayload true "Update Treasury Request Payload"
// @Success 200 "The treasury address was updated"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not an admin, or the timelock is not scheduled or not matured"
// @Router /v1/admin/treasury [post]
func (h *Handler) UpdateTreasury(request *http.Request) (*Result, *types.Error) {
	payload := &UpdateTreasuryRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.AdminAddress) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid admin address")
	}

	updateErr := h.services.UpdateTreasuryAddress(request.Context(), payload.AdminAddress, payload.TreasuryAddress)
	if updateErr != nil {
		return nil, updateErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// UpdateThreshold godoc
// @Summary Update the slash approval threshold
// @Description Applies a threshold change behind the timelock. Open proposals keep their snapshotted threshold. Admin only.
// @Accept json
// @Produce json
// @Param payload body UpdateThresholdRequestPayload true "Update Threshold Request Payload"
// @Success 200 "The approval threshold was updated"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Caller is not an admin, or the timelock is not scheduled or not matured"
// @Router /v1/admin/threshold [post]
func (h *Handler) UpdateThreshold(request *http.Request) (*Result, *types.Error) {
	payload := &UpdateThresholdRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.AdminAddress) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid admin address")
	}

	updateErr := h.services.UpdateSlashApprovalThreshold(request.Context(), payload.AdminAddress, payload.Threshold)
	if updateErr != nil {
		return nil, updateErr
	}

	return &Result{Status: http.StatusOK}, nil
}

package handlers

import (
	"net/http"

	"github.com/corestake/staking-governance-service/internal/types"
)

// GetGovernanceParams godoc
// @Summary Get governance parameters
// @Description Retrieves the current slash approval threshold, treasury address and staking limits
// @Produce json
// @Success 200 {object} PublicResponse[services.GovernanceParamsPublic] "Governance parameters"
// @Router /v1/governance/params [get]
func (h *Handler) GetGovernanceParams(request *http.Request) (*Result, *types.Error) {
	params, err := h.services.GetGovernanceParams(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(params), nil
}

package handlers

import (
	"context"
	"net/http"

	"github.com/corestake/staking-governance-service/internal/config"
	"github.com/corestake/staking-governance-service/internal/services"
	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type paginationResponse struct {
	NextKey string `json:"next_key"`
}

type PublicResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResultWithPagination[T any](data T, pageToken string) *Result {
	res := &PublicResponse[T]{Data: data, Pagination: &paginationResponse{NextKey: pageToken}}
	return &Result{Data: res, Status: http.StatusOK}
}

func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func parseAddressQuery(request *http.Request, name string) (string, *types.Error) {
	value := request.URL.Query().Get(name)
	if value == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, name+" is required")
	}
	if !utils.IsValidAddress(value) {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid "+name)
	}
	return value, nil
}

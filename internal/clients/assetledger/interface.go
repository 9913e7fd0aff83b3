package assetledger

import (
	"context"
	"net/http"

	"github.com/corestake/staking-governance-service/internal/types"
)

type AssetLedgerClientInterface interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() int
	GetHttpClient() *http.Client
	GetBalance(ctx context.Context, accountAddress, assetID string) (*BalanceResponse, *types.Error)
}

package assetledger

import (
	"context"
	"fmt"
	"net/http"

	baseclient "github.com/corestake/staking-governance-service/internal/clients/base"
	"github.com/corestake/staking-governance-service/internal/config"
	"github.com/corestake/staking-governance-service/internal/types"
)

// AssetLedgerClient talks to the upstream asset ledger service, the system
// of record for token balances. It is only consulted to backfill accounts
// the mirrored balance collection has not seen yet.
type AssetLedgerClient struct {
	config     *config.AssetLedgerConfig
	httpClient *http.Client
}

type BalanceResponse struct {
	AccountAddress string `json:"account_address"`
	AssetID        string `json:"asset_id"`
	Balance        uint64 `json:"balance"`
}

func NewAssetLedgerClient(config *config.AssetLedgerConfig) *AssetLedgerClient {
	httpClient := &http.Client{}
	return &AssetLedgerClient{
		config,
		httpClient,
	}
}

// Necessary for the base client to send the request to the right host
func (c *AssetLedgerClient) GetBaseURL() string {
	return c.config.Host
}

func (c *AssetLedgerClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *AssetLedgerClient) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *AssetLedgerClient) GetBalance(
	ctx context.Context, accountAddress, assetID string,
) (*BalanceResponse, *types.Error) {
	path := fmt.Sprintf("/v1/balances/%s/%s", accountAddress, assetID)
	opts := &baseclient.BaseClientOptions{
		Path:    path,
		Headers: map[string]string{"Accept": "application/json"},
	}

	return baseclient.SendRequest[any, BalanceResponse](ctx, c, http.MethodGet, opts, nil)
}

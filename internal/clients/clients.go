package clients

import (
	"github.com/corestake/staking-governance-service/internal/clients/assetledger"
	"github.com/corestake/staking-governance-service/internal/config"
)

type Clients struct {
	AssetLedger assetledger.AssetLedgerClientInterface
}

func New(cfg *config.Config) *Clients {
	assetLedgerClient := assetledger.NewAssetLedgerClient(&cfg.AssetLedger)

	return &Clients{
		AssetLedger: assetLedgerClient,
	}
}

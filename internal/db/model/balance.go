package model

import "fmt"

const AssetBalanceCollection = "asset_balances"

// AssetBalanceDocument mirrors the upstream asset ledger's view of how much
// of an asset an account owns. Updated by balance events from the queue and
// backfilled on demand from the ledger API.
type AssetBalanceDocument struct {
	BalanceID      string `bson:"_id"` // Primary key, account:asset composite
	AccountAddress string `bson:"account_address"`
	AssetID        string `bson:"asset_id"`
	Balance        uint64 `bson:"balance"`
	UpdatedAt      int64  `bson:"updated_at"`
}

func BuildAssetBalanceID(accountAddress, assetID string) string {
	return fmt.Sprintf("%s:%s", accountAddress, assetID)
}

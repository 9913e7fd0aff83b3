package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corestake/staking-governance-service/internal/db/model"
)

// UpsertAssetBalance writes the mirrored ledger balance for one
// account/asset pair. Balance events are absolute snapshots, not deltas,
// so last write wins.
func (db *Database) UpsertAssetBalance(
	ctx context.Context, accountAddress, assetID string, balance uint64, updatedAt int64,
) error {
	balanceID := model.BuildAssetBalanceID(accountAddress, assetID)
	client := db.collection(model.AssetBalanceCollection)
	document := model.AssetBalanceDocument{
		BalanceID:      balanceID,
		AccountAddress: accountAddress,
		AssetID:        assetID,
		Balance:        balance,
		UpdatedAt:      updatedAt,
	}
	_, err := client.ReplaceOne(ctx, bson.M{"_id": balanceID}, document, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) FindAssetBalance(
	ctx context.Context, accountAddress, assetID string,
) (*model.AssetBalanceDocument, error) {
	balanceID := model.BuildAssetBalanceID(accountAddress, assetID)
	var balance model.AssetBalanceDocument
	err := db.collection(model.AssetBalanceCollection).FindOne(ctx, bson.M{"_id": balanceID}).Decode(&balance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     balanceID,
				Message: "asset balance not found",
			}
		}
		return nil, err
	}
	return &balance, nil
}

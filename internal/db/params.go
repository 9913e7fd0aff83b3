package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/types"
)

// InitGovernanceParams seeds the params document on first boot. An existing
// document wins; config values never overwrite state set through governance.
func (db *Database) InitGovernanceParams(ctx context.Context, threshold uint32, treasuryAddress string, now int64) error {
	client := db.collection(model.GovernanceParamsCollection)
	filter := bson.M{"_id": model.GovernanceParamsID}
	update := bson.M{
		"$setOnInsert": model.GovernanceParamsDocument{
			ParamsID:               model.GovernanceParamsID,
			SlashApprovalThreshold: threshold,
			TreasuryAddress:        treasuryAddress,
			UpdatedAt:              now,
		},
	}
	_, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (db *Database) GetGovernanceParams(ctx context.Context) (*model.GovernanceParamsDocument, error) {
	return db.findGovernanceParamsWith(ctx)
}

func (db *Database) findGovernanceParams(sessCtx mongo.SessionContext) (*model.GovernanceParamsDocument, error) {
	return db.findGovernanceParamsWith(sessCtx)
}

func (db *Database) findGovernanceParamsWith(ctx context.Context) (*model.GovernanceParamsDocument, error) {
	var params model.GovernanceParamsDocument
	err := db.collection(model.GovernanceParamsCollection).
		FindOne(ctx, bson.M{"_id": model.GovernanceParamsID}).Decode(&params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.GovernanceParamsID,
				Message: "governance params not initialized",
			}
		}
		return nil, err
	}
	return &params, nil
}

// UpdateTreasuryAddress changes the treasury address behind the timelock
// gate. The maturity check, the entry consumption and the params write are
// one transaction.
func (db *Database) UpdateTreasuryAddress(ctx context.Context, treasuryAddress string, now int64) error {
	_, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := db.guardAndConsumeTimelock(sessCtx, types.UpdateTreasuryTag.ToString(), now); err != nil {
			return nil, err
		}
		return nil, db.setGovernanceParams(sessCtx, bson.M{"treasury_address": treasuryAddress, "updated_at": now})
	})
	return err
}

// UpdateSlashApprovalThreshold changes the quorum threshold behind the
// timelock gate. Proposals already open keep the threshold they snapshotted.
func (db *Database) UpdateSlashApprovalThreshold(ctx context.Context, threshold uint32, now int64) error {
	_, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := db.guardAndConsumeTimelock(sessCtx, types.UpdateApprovalThresholdTag.ToString(), now); err != nil {
			return nil, err
		}
		return nil, db.setGovernanceParams(sessCtx, bson.M{"slash_approval_threshold": threshold, "updated_at": now})
	})
	return err
}

func (db *Database) setGovernanceParams(sessCtx mongo.SessionContext, fields bson.M) error {
	client := db.collection(model.GovernanceParamsCollection)
	result, err := client.UpdateOne(sessCtx, bson.M{"_id": model.GovernanceParamsID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     model.GovernanceParamsID,
			Message: "governance params not initialized",
		}
	}
	return nil
}

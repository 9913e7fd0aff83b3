package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corestake/staking-governance-service/internal/db/model"
)

// StakeEntry is one deposit within a batch. Amount and duration are already
// validated by the service layer; the db layer enforces balance sufficiency
// and position state inside the transaction.
type StakeEntry struct {
	AssetID         string
	Amount          uint64
	DurationSeconds int64
}

// SaveStakePosition writes a stake position for (staker, asset) after
// checking the mirrored ledger balance covers the amount. A position that is
// still active cannot be overwritten; an emptied one is replaced in full.
// The balance read and the position write share one transaction, so a
// concurrent balance update either lands entirely before or entirely after
// this deposit.
func (db *Database) SaveStakePosition(
	ctx context.Context, stakerAddress, assetID string, amount uint64, durationSeconds, startTimestamp int64,
) error {
	_, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := db.checkBalanceCovers(sessCtx, stakerAddress, assetID, amount); err != nil {
			return nil, err
		}
		return nil, db.writeStakePosition(sessCtx, stakerAddress, assetID, amount, durationSeconds, startTimestamp)
	})
	return err
}

// SaveStakePositions applies a whole batch of deposits atomically: every
// entry succeeds or none do. Balance requirements are aggregated per asset
// up front by the caller and checked here against a single transactional
// snapshot, so an entry can never observe a balance another entry in the
// same batch should have consumed.
func (db *Database) SaveStakePositions(
	ctx context.Context, stakerAddress string, entries []StakeEntry,
	requiredBalances map[string]uint64, startTimestamp int64,
) error {
	_, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		for assetID, required := range requiredBalances {
			if err := db.checkBalanceCovers(sessCtx, stakerAddress, assetID, required); err != nil {
				return nil, err
			}
		}
		for _, entry := range entries {
			err := db.writeStakePosition(
				sessCtx, stakerAddress, entry.AssetID, entry.Amount, entry.DurationSeconds, startTimestamp,
			)
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (db *Database) checkBalanceCovers(
	sessCtx mongo.SessionContext, accountAddress, assetID string, amount uint64,
) error {
	balanceID := model.BuildAssetBalanceID(accountAddress, assetID)
	var balance model.AssetBalanceDocument
	err := db.collection(model.AssetBalanceCollection).FindOne(sessCtx, bson.M{"_id": balanceID}).Decode(&balance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No mirror entry means the ledger has never reported a balance
			// for this account/asset, which is indistinguishable from zero.
			return &InsufficientBalanceError{
				Key:     balanceID,
				Message: "no ledger balance found for account and asset",
			}
		}
		return err
	}
	if balance.Balance < amount {
		return &InsufficientBalanceError{
			Key:     balanceID,
			Message: "ledger balance does not cover the requested amount",
		}
	}
	return nil
}

func (db *Database) writeStakePosition(
	sessCtx mongo.SessionContext, stakerAddress, assetID string, amount uint64, durationSeconds, startTimestamp int64,
) error {
	positionID := model.BuildStakePositionID(stakerAddress, assetID)
	client := db.collection(model.StakePositionCollection)

	var existing model.StakePositionDocument
	err := client.FindOne(sessCtx, bson.M{"_id": positionID}).Decode(&existing)
	if err == nil {
		if existing.Active && existing.Amount > 0 {
			return &StakeActiveError{
				Key:     positionID,
				Message: "stake position is still active, cannot be replaced",
			}
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	document := model.StakePositionDocument{
		StakePositionID: positionID,
		StakerAddress:   stakerAddress,
		AssetID:         assetID,
		Amount:          amount,
		StartTimestamp:  startTimestamp,
		DurationSeconds: durationSeconds,
		Active:          true,
	}
	_, err = client.ReplaceOne(sessCtx, bson.M{"_id": positionID}, document, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) FindStakePositionByKey(
	ctx context.Context, stakerAddress, assetID string,
) (*model.StakePositionDocument, error) {
	positionID := model.BuildStakePositionID(stakerAddress, assetID)
	var position model.StakePositionDocument
	err := db.collection(model.StakePositionCollection).FindOne(ctx, bson.M{"_id": positionID}).Decode(&position)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     positionID,
				Message: "stake position not found",
			}
		}
		return nil, err
	}
	return &position, nil
}

func (db *Database) FindStakePositionsByStaker(
	ctx context.Context, stakerAddress string, paginationToken string,
) (*DbResultMap[model.StakePositionDocument], error) {
	client := db.collection(model.StakePositionCollection)

	filter := bson.M{"staker_address": stakerAddress}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_timestamp", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(db.cfg.MaxPaginationLimit)

	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.StakePositionPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter = bson.M{
			"staker_address": stakerAddress,
			"$or": []bson.M{
				{"start_timestamp": bson.M{"$lt": decodedToken.StartTimestamp}},
				{"start_timestamp": decodedToken.StartTimestamp, "_id": bson.M{"$gt": decodedToken.StakePositionID}},
			},
		}
	}

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var positions []model.StakePositionDocument
	if err = cursor.All(ctx, &positions); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(db.cfg, positions, model.BuildStakePositionPaginationToken)
}

// applyStakePenalty decrements a stake position in place. The conditional
// filter guarantees the amount can never go negative: a penalty larger than
// the current stake matches no document and leaves the position untouched.
// Runs inside the caller's session so a failed slash execution rolls the
// decrement back together with the proposal update.
func (db *Database) applyStakePenalty(
	sessCtx mongo.SessionContext, stakerAddress, assetID string, amount uint64,
) error {
	positionID := model.BuildStakePositionID(stakerAddress, assetID)
	client := db.collection(model.StakePositionCollection)

	filter := bson.M{
		"_id":    positionID,
		"active": true,
		"amount": bson.M{"$gte": amount},
	}
	update := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
	result, err := client.UpdateOne(sessCtx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		var position model.StakePositionDocument
		findErr := client.FindOne(sessCtx, bson.M{"_id": positionID}).Decode(&position)
		if findErr != nil {
			if errors.Is(findErr, mongo.ErrNoDocuments) {
				return &StakeNotFoundError{
					Key:     positionID,
					Message: "stake position not found",
				}
			}
			return findErr
		}
		if !position.Active {
			return &StakeNotFoundError{
				Key:     positionID,
				Message: "stake position is not active",
			}
		}
		return &InsufficientStakeError{
			Key:     positionID,
			Message: "staked amount does not cover the penalty",
		}
	}

	// A fully slashed position stays on record but is no longer active.
	_, err = client.UpdateOne(
		sessCtx,
		bson.M{"_id": positionID, "amount": 0},
		bson.M{"$set": bson.M{"active": false}},
	)
	return err
}

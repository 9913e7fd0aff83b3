package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corestake/staking-governance-service/internal/db/model"
)

// ScheduleTimelock announces a guarded admin operation. Re-scheduling an
// already pending tag replaces the previous entry and restarts the delay.
func (db *Database) ScheduleTimelock(
	ctx context.Context, operationTag string, maturesAt, scheduledAt int64, scheduledBy string,
) error {
	client := db.collection(model.TimelockCollection)
	document := model.NewTimelockDocument(operationTag, maturesAt, scheduledAt, scheduledBy)
	_, err := client.ReplaceOne(ctx, bson.M{"_id": operationTag}, document, options.Replace().SetUpsert(true))
	return err
}

func (db *Database) FindTimelockByTag(ctx context.Context, operationTag string) (*model.TimelockDocument, error) {
	var timelock model.TimelockDocument
	err := db.collection(model.TimelockCollection).FindOne(ctx, bson.M{"_id": operationTag}).Decode(&timelock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     operationTag,
				Message: "no timelock scheduled for operation",
			}
		}
		return nil, err
	}
	return &timelock, nil
}

// guardAndConsumeTimelock enforces the maturity check for a guarded admin
// mutation and consumes the entry, all inside the caller's transaction. The
// mutation is rejected strictly before maturity and allowed at or after it;
// a consumed entry means each schedule authorizes exactly one execution.
func (db *Database) guardAndConsumeTimelock(
	sessCtx mongo.SessionContext, operationTag string, now int64,
) error {
	client := db.collection(model.TimelockCollection)

	var timelock model.TimelockDocument
	err := client.FindOne(sessCtx, bson.M{"_id": operationTag}).Decode(&timelock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &TimelockNotScheduledError{
				Key:     operationTag,
				Message: "operation has not been scheduled through the timelock",
			}
		}
		return err
	}

	if now < timelock.MaturesAt {
		return &TimelockNotMaturedError{
			Key:       operationTag,
			MaturesAt: timelock.MaturesAt,
			Message:   "timelock has not matured yet",
		}
	}

	_, err = client.DeleteOne(sessCtx, bson.M{"_id": operationTag})
	return err
}

package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corestake/staking-governance-service/internal/db/model"
)

func (db *Database) GrantRole(ctx context.Context, role, accountAddress string, grantedAt int64) error {
	client := db.collection(model.AccessRoleCollection)
	document := model.AccessRoleDocument{
		RoleID:         model.BuildAccessRoleID(role, accountAddress),
		Role:           role,
		AccountAddress: accountAddress,
		GrantedAt:      grantedAt,
	}
	_, err := client.InsertOne(ctx, document)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     document.RoleID,
						Message: "account already holds this role",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) RevokeRole(ctx context.Context, role, accountAddress string) error {
	roleID := model.BuildAccessRoleID(role, accountAddress)
	result, err := db.collection(model.AccessRoleCollection).DeleteOne(ctx, bson.M{"_id": roleID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return &NotFoundError{
			Key:     roleID,
			Message: "account does not hold this role",
		}
	}
	return nil
}

func (db *Database) HasRole(ctx context.Context, role, accountAddress string) (bool, error) {
	roleID := model.BuildAccessRoleID(role, accountAddress)
	err := db.collection(model.AccessRoleCollection).FindOne(ctx, bson.M{"_id": roleID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/types"
	"github.com/corestake/staking-governance-service/internal/utils"
)

// CreateSlashProposal opens a penalty proposal against (staker, asset). Only
// one proposal per pair may be open at a time; a caller that passes
// supersede marks the in-flight one as superseded instead of failing. The
// proposal id comes from a monotonically increasing counter which advances
// on every successful open, superseding included. The quorum threshold is
// copied onto the proposal at open time.
func (db *Database) CreateSlashProposal(
	ctx context.Context, stakerAddress, assetID string, slashAmount uint64,
	proposerAddress string, supersede bool, proposedAt int64,
) (*model.SlashProposalDocument, error) {
	result, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		params, err := db.findGovernanceParams(sessCtx)
		if err != nil {
			return nil, err
		}

		proposalClient := db.collection(model.SlashProposalCollection)
		openFilter := bson.M{
			"staker_address": stakerAddress,
			"asset_id":       assetID,
			"status":         types.ProposalOpen,
		}
		var existing model.SlashProposalDocument
		findErr := proposalClient.FindOne(sessCtx, openFilter).Decode(&existing)
		if findErr == nil {
			if !supersede {
				return nil, &ProposalOpenError{
					Key:     fmt.Sprintf("%s:%s", stakerAddress, assetID),
					Message: "an open slash proposal already exists for this staker and asset",
				}
			}
			_, updateErr := proposalClient.UpdateOne(
				sessCtx,
				bson.M{"_id": existing.ProposalID, "status": types.ProposalOpen},
				bson.M{"$set": bson.M{"status": types.ProposalSuperseded}},
			)
			if updateErr != nil {
				return nil, updateErr
			}
		} else if !errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil, findErr
		}

		proposalID, err := db.nextProposalID(sessCtx)
		if err != nil {
			return nil, err
		}

		document := model.SlashProposalDocument{
			ProposalID:        proposalID,
			StakerAddress:     stakerAddress,
			AssetID:           assetID,
			SlashAmount:       slashAmount,
			ProposerAddress:   proposerAddress,
			ProposedAt:        proposedAt,
			ApprovalThreshold: params.SlashApprovalThreshold,
			Approvals:         0,
			ApprovedBy:        []string{},
			Status:            types.ProposalOpen,
		}
		if _, err := proposalClient.InsertOne(sessCtx, document); err != nil {
			return nil, err
		}
		return &document, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.SlashProposalDocument), nil
}

// ApproveSlashProposal records one validator approval. The approval that
// crosses the snapshotted threshold also executes the slash within the same
// transaction: the proposal is marked executed first, then the penalty is
// applied, and a failed penalty rolls both back so the proposal never ends
// up executed with no stake deducted. Returns the updated proposal and
// whether this approval triggered execution.
func (db *Database) ApproveSlashProposal(
	ctx context.Context, proposalID int64, approverAddress string,
) (*model.SlashProposalDocument, bool, error) {
	executed := false
	result, err := db.txWithRetries(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		executed = false
		proposalClient := db.collection(model.SlashProposalCollection)

		var proposal model.SlashProposalDocument
		err := proposalClient.FindOne(sessCtx, bson.M{"_id": proposalID}).Decode(&proposal)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     fmt.Sprintf("%d", proposalID),
					Message: "slash proposal not found",
				}
			}
			return nil, err
		}

		if proposal.Status != types.ProposalOpen {
			return nil, &ProposalClosedError{
				Key:     fmt.Sprintf("%d", proposalID),
				Status:  proposal.Status,
				Message: fmt.Sprintf("slash proposal is %s, no further approvals accepted", proposal.Status),
			}
		}

		if utils.Contains(proposal.ApprovedBy, approverAddress) {
			return nil, &AlreadyApprovedError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "validator has already approved this proposal",
			}
		}

		// The filter re-states the open status and approver absence so the
		// update is a no-op if another session slipped in between the read
		// and the write.
		approveFilter := bson.M{
			"_id":         proposalID,
			"status":      types.ProposalOpen,
			"approved_by": bson.M{"$ne": approverAddress},
		}
		approveUpdate := bson.M{
			"$addToSet": bson.M{"approved_by": approverAddress},
			"$inc":      bson.M{"approvals": 1},
		}
		updateResult, err := proposalClient.UpdateOne(sessCtx, approveFilter, approveUpdate)
		if err != nil {
			return nil, err
		}
		if updateResult.MatchedCount == 0 {
			return nil, &AlreadyApprovedError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "validator has already approved this proposal",
			}
		}

		if err := proposalClient.FindOne(sessCtx, bson.M{"_id": proposalID}).Decode(&proposal); err != nil {
			return nil, err
		}

		if proposal.Approvals >= proposal.ApprovalThreshold {
			// Effects before interactions: flip the terminal flag, then touch
			// the stake ledger. Both writes share this transaction, so a
			// penalty failure reverts the flag too.
			_, err := proposalClient.UpdateOne(
				sessCtx,
				bson.M{"_id": proposalID, "status": types.ProposalOpen},
				bson.M{"$set": bson.M{"status": types.ProposalExecuted}},
			)
			if err != nil {
				return nil, err
			}
			err = db.applyStakePenalty(sessCtx, proposal.StakerAddress, proposal.AssetID, proposal.SlashAmount)
			if err != nil {
				return nil, err
			}
			proposal.Status = types.ProposalExecuted
			executed = true
		}

		return &proposal, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.(*model.SlashProposalDocument), executed, nil
}

func (db *Database) nextProposalID(sessCtx mongo.SessionContext) (int64, error) {
	counterClient := db.collection(model.CounterCollection)
	filter := bson.M{"_id": model.ProposalCounterID}
	update := bson.M{"$inc": bson.M{"sequence": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter model.CounterDocument
	if err := counterClient.FindOneAndUpdate(sessCtx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Sequence, nil
}

func (db *Database) FindSlashProposalByID(ctx context.Context, proposalID int64) (*model.SlashProposalDocument, error) {
	var proposal model.SlashProposalDocument
	err := db.collection(model.SlashProposalCollection).FindOne(ctx, bson.M{"_id": proposalID}).Decode(&proposal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     fmt.Sprintf("%d", proposalID),
				Message: "slash proposal not found",
			}
		}
		return nil, err
	}
	return &proposal, nil
}

func (db *Database) FindSlashProposals(
	ctx context.Context, assetID string, paginationToken string,
) (*DbResultMap[model.SlashProposalDocument], error) {
	client := db.collection(model.SlashProposalCollection)

	baseFilter := bson.M{}
	if assetID != "" {
		baseFilter["asset_id"] = assetID
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "proposed_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(db.cfg.MaxPaginationLimit)

	filter := baseFilter
	if paginationToken != "" {
		decodedToken, err := model.DecodePaginationToken[model.SlashProposalPagination](paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter = bson.M{
			"$and": []bson.M{
				baseFilter,
				{"$or": []bson.M{
					{"proposed_at": bson.M{"$lt": decodedToken.ProposedAt}},
					{"proposed_at": decodedToken.ProposedAt, "_id": bson.M{"$lt": decodedToken.ProposalID}},
				}},
			},
		}
	}

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var proposals []model.SlashProposalDocument
	if err = cursor.All(ctx, &proposals); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(db.cfg, proposals, model.BuildSlashProposalPaginationToken)
}

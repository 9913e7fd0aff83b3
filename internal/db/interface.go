package db

import (
	"context"

	"github.com/corestake/staking-governance-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// Stake ledger
	SaveStakePosition(
		ctx context.Context, stakerAddress, assetID string, amount uint64, durationSeconds, startTimestamp int64,
	) error
	SaveStakePositions(
		ctx context.Context, stakerAddress string, entries []StakeEntry,
		requiredBalances map[string]uint64, startTimestamp int64,
	) error
	FindStakePositionByKey(ctx context.Context, stakerAddress, assetID string) (*model.StakePositionDocument, error)
	FindStakePositionsByStaker(
		ctx context.Context, stakerAddress string, paginationToken string,
	) (*DbResultMap[model.StakePositionDocument], error)
	// Slash governance
	CreateSlashProposal(
		ctx context.Context, stakerAddress, assetID string, slashAmount uint64,
		proposerAddress string, supersede bool, proposedAt int64,
	) (*model.SlashProposalDocument, error)
	ApproveSlashProposal(
		ctx context.Context, proposalID int64, approverAddress string,
	) (*model.SlashProposalDocument, bool, error)
	FindSlashProposalByID(ctx context.Context, proposalID int64) (*model.SlashProposalDocument, error)
	FindSlashProposals(
		ctx context.Context, assetID string, paginationToken string,
	) (*DbResultMap[model.SlashProposalDocument], error)
	// Timelocked admin gate
	ScheduleTimelock(ctx context.Context, operationTag string, maturesAt, scheduledAt int64, scheduledBy string) error
	FindTimelockByTag(ctx context.Context, operationTag string) (*model.TimelockDocument, error)
	UpdateTreasuryAddress(ctx context.Context, treasuryAddress string, now int64) error
	UpdateSlashApprovalThreshold(ctx context.Context, threshold uint32, now int64) error
	// Governance params
	InitGovernanceParams(ctx context.Context, threshold uint32, treasuryAddress string, now int64) error
	GetGovernanceParams(ctx context.Context) (*model.GovernanceParamsDocument, error)
	// Access registry
	GrantRole(ctx context.Context, role, accountAddress string, grantedAt int64) error
	RevokeRole(ctx context.Context, role, accountAddress string) error
	HasRole(ctx context.Context, role, accountAddress string) (bool, error)
	// Asset ledger mirror
	UpsertAssetBalance(ctx context.Context, accountAddress, assetID string, balance uint64, updatedAt int64) error
	FindAssetBalance(ctx context.Context, accountAddress, assetID string) (*model.AssetBalanceDocument, error)
	// Queue plumbing
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt interface{}) error
}

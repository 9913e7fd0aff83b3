package model

import (
	"github.com/corestake/staking-governance-service/internal/types"
)

const SlashProposalCollection = "slash_proposals"

// SlashProposalDocument is a penalty proposal against one staker/asset pair.
// The approval threshold is snapshotted at open time so that a later
// governance change never alters the quorum of an in-flight proposal.
// Invariant: Approvals == len(ApprovedBy), and an executed proposal is
// never mutated again.
type SlashProposalDocument struct {
	ProposalID        int64                `bson:"_id"` // Primary key, monotonically increasing
	StakerAddress     string               `bson:"staker_address"`
	AssetID           string               `bson:"asset_id"`
	SlashAmount       uint64               `bson:"slash_amount"`
	ProposerAddress   string               `bson:"proposer_address"`
	ProposedAt        int64                `bson:"proposed_at"`
	ApprovalThreshold uint32               `bson:"approval_threshold"`
	Approvals         uint32               `bson:"approvals"`
	ApprovedBy        []string             `bson:"approved_by"`
	Status            types.ProposalStatus `bson:"status"`
}

type SlashProposalPagination struct {
	ProposedAt int64 `json:"proposed_at"`
	ProposalID int64 `json:"proposal_id"`
}

func BuildSlashProposalPaginationToken(d SlashProposalDocument) (string, error) {
	page := SlashProposalPagination{
		ProposedAt: d.ProposedAt,
		ProposalID: d.ProposalID,
	}
	token, err := GetPaginationToken(page)
	if err != nil {
		return "", err
	}
	return token, nil
}

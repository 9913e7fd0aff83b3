package model

const (
	GovernanceParamsCollection = "governance_params"
	CounterCollection          = "counters"
)

// GovernanceParamsID is the _id of the singleton params document.
const GovernanceParamsID = "governance"

// ProposalCounterID is the _id of the slash proposal sequence counter.
const ProposalCounterID = "slash_proposal_id"

// GovernanceParamsDocument holds the runtime-mutable governance state.
// Mutations go through the timelocked admin endpoints only.
type GovernanceParamsDocument struct {
	ParamsID               string `bson:"_id"` // Primary key
	SlashApprovalThreshold uint32 `bson:"slash_approval_threshold"`
	TreasuryAddress        string `bson:"treasury_address"`
	UpdatedAt              int64  `bson:"updated_at"`
}

type CounterDocument struct {
	CounterID string `bson:"_id"` // Primary key
	Sequence  int64  `bson:"sequence"`
}

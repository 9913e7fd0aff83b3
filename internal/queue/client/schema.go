package client

const (
	BalanceUpdateQueueName string = "asset_balance_queue"
	StakeEventsQueueName   string = "stake_events_queue"
	SlashEventsQueueName   string = "slash_events_queue"
)

type EventType int

const (
	BalanceUpdateEventType   EventType = 1
	StakeCreatedEventType    EventType = 2
	SlashProposedEventType   EventType = 3
	SlashApprovedEventType   EventType = 4
	SlashExecutedEventType   EventType = 5
	TreasuryUpdatedEventType EventType = 6
)

// BalanceUpdateEvent is an absolute balance snapshot published by the
// upstream asset ledger whenever an account's holdings change.
type BalanceUpdateEvent struct {
	EventType      EventType `json:"event_type"` // always 1
	AccountAddress string    `json:"account_address"`
	AssetID        string    `json:"asset_id"`
	Balance        uint64    `json:"balance"`
}

type StakeCreatedEvent struct {
	EventType       EventType `json:"event_type"` // always 2
	StakerAddress   string    `json:"staker_address"`
	AssetID         string    `json:"asset_id"`
	Amount          uint64    `json:"amount"`
	DurationSeconds int64     `json:"duration_seconds"`
	StartTimestamp  int64     `json:"start_timestamp"`
}

func NewStakeCreatedEvent(
	stakerAddress, assetID string, amount uint64, durationSeconds, startTimestamp int64,
) StakeCreatedEvent {
	return StakeCreatedEvent{
		EventType:       StakeCreatedEventType,
		StakerAddress:   stakerAddress,
		AssetID:         assetID,
		Amount:          amount,
		DurationSeconds: durationSeconds,
		StartTimestamp:  startTimestamp,
	}
}

type SlashProposedEvent struct {
	EventType       EventType `json:"event_type"` // always 3
	ProposalID      int64     `json:"proposal_id"`
	StakerAddress   string    `json:"staker_address"`
	AssetID         string    `json:"asset_id"`
	SlashAmount     uint64    `json:"slash_amount"`
	ProposerAddress string    `json:"proposer_address"`
}

func NewSlashProposedEvent(
	proposalID int64, stakerAddress, assetID string, slashAmount uint64, proposerAddress string,
) SlashProposedEvent {
	return SlashProposedEvent{
		EventType:       SlashProposedEventType,
		ProposalID:      proposalID,
		StakerAddress:   stakerAddress,
		AssetID:         assetID,
		SlashAmount:     slashAmount,
		ProposerAddress: proposerAddress,
	}
}

type SlashApprovedEvent struct {
	EventType       EventType `json:"event_type"` // always 4
	ProposalID      int64     `json:"proposal_id"`
	ApproverAddress string    `json:"approver_address"`
	Approvals       uint32    `json:"approvals"`
	Threshold       uint32    `json:"threshold"`
}

func NewSlashApprovedEvent(proposalID int64, approverAddress string, approvals, threshold uint32) SlashApprovedEvent {
	return SlashApprovedEvent{
		EventType:       SlashApprovedEventType,
		ProposalID:      proposalID,
		ApproverAddress: approverAddress,
		Approvals:       approvals,
		Threshold:       threshold,
	}
}

type SlashExecutedEvent struct {
	EventType     EventType `json:"event_type"` // always 5
	ProposalID    int64     `json:"proposal_id"`
	StakerAddress string    `json:"staker_address"`
	AssetID       string    `json:"asset_id"`
	SlashAmount   uint64    `json:"slash_amount"`
}

func NewSlashExecutedEvent(proposalID int64, stakerAddress, assetID string, slashAmount uint64) SlashExecutedEvent {
	return SlashExecutedEvent{
		EventType:     SlashExecutedEventType,
		ProposalID:    proposalID,
		StakerAddress: stakerAddress,
		AssetID:       assetID,
		SlashAmount:   slashAmount,
	}
}

type TreasuryUpdatedEvent struct {
	EventType       EventType `json:"event_type"` // always 6
	TreasuryAddress string    `json:"treasury_address"`
	UpdatedBy       string    `json:"updated_by"`
	UpdatedAt       int64     `json:"updated_at"`
}

func NewTreasuryUpdatedEvent(treasuryAddress, updatedBy string, updatedAt int64) TreasuryUpdatedEvent {
	return TreasuryUpdatedEvent{
		EventType:       TreasuryUpdatedEventType,
		TreasuryAddress: treasuryAddress,
		UpdatedBy:       updatedBy,
		UpdatedAt:       updatedAt,
	}
}

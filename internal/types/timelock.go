package types

// OperationTag identifies a guarded admin operation in the timelock table.
// Tags are derived from the operation name so that scheduling and execution
// agree on the key without any shared runtime state.
type OperationTag string

const (
	UpdateTreasuryTag          OperationTag = "update_treasury"
	UpdateApprovalThresholdTag OperationTag = "update_approval_threshold"
)

func (t OperationTag) ToString() string {
	return string(t)
}

// KnownOperationTag reports whether the tag names an operation the gate
// guards. Scheduling an unknown tag is rejected up front.
func KnownOperationTag(tag OperationTag) bool {
	switch tag {
	case UpdateTreasuryTag, UpdateApprovalThresholdTag:
		return true
	default:
		return false
	}
}

package types

type ProposalStatus string

const (
	ProposalOpen       ProposalStatus = "open"
	ProposalExecuted   ProposalStatus = "executed"
	ProposalSuperseded ProposalStatus = "superseded"
)

func (s ProposalStatus) ToString() string {
	return string(s)
}

package model

const TimelockCollection = "timelocks"

// TimelockDocument is one scheduled admin operation. The guarded mutation
// deletes the entry on success, so each schedule authorizes exactly one
// execution.
type TimelockDocument struct {
	OperationTag string `bson:"_id"` // Primary key
	MaturesAt    int64  `bson:"matures_at"`
	ScheduledAt  int64  `bson:"scheduled_at"`
	ScheduledBy  string `bson:"scheduled_by"`
}

func NewTimelockDocument(operationTag string, maturesAt, scheduledAt int64, scheduledBy string) *TimelockDocument {
	return &TimelockDocument{
		OperationTag: operationTag,
		MaturesAt:    maturesAt,
		ScheduledAt:  scheduledAt,
		ScheduledBy:  scheduledBy,
	}
}

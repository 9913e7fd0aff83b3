package model

import "fmt"

const StakePositionCollection = "stake_positions"

// StakePositionDocument tracks how much of an asset a staker has locked and
// since when. Keyed by (staker, asset); the record persists after it is
// emptied by slashing, it just flips to inactive.
type StakePositionDocument struct {
	StakePositionID string `bson:"_id"` // Primary key, staker:asset composite
	StakerAddress   string `bson:"staker_address"`
	AssetID         string `bson:"asset_id"`
	Amount          uint64 `bson:"amount"`
	StartTimestamp  int64  `bson:"start_timestamp"`
	DurationSeconds int64  `bson:"duration_seconds"`
	Active          bool   `bson:"active"`
}

func BuildStakePositionID(stakerAddress, assetID string) string {
	return fmt.Sprintf("%s:%s", stakerAddress, assetID)
}

type StakePositionPagination struct {
	StartTimestamp  int64  `json:"start_timestamp"`
	StakePositionID string `json:"stake_position_id"`
}

func BuildStakePositionPaginationToken(d StakePositionDocument) (string, error) {
	page := StakePositionPagination{
		StartTimestamp:  d.StartTimestamp,
		StakePositionID: d.StakePositionID,
	}
	token, err := GetPaginationToken(page)
	if err != nil {
		return "", err
	}
	return token, nil
}

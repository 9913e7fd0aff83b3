package tests

import (
	"fmt"
	"math/rand"
	"time"

	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
)

func testStartTimestamp() int64 {
	return time.Now().Unix()
}

func randomStakerAddress(r *rand.Rand) string {
	return fmt.Sprintf("staker-%04d.test", r.Intn(10000))
}

func randomAssetID(r *rand.Rand) string {
	return fmt.Sprintf("asset-%04d", r.Intn(10000))
}

// buildBalanceUpdateEvents creates balance snapshots for the given account,
// one per asset, each with a balance large enough to cover typical deposits.
func buildBalanceUpdateEvents(accountAddress string, assetIDs []string, balance uint64) []queueclient.BalanceUpdateEvent {
	var events []queueclient.BalanceUpdateEvent
	for _, assetID := range assetIDs {
		events = append(events, queueclient.BalanceUpdateEvent{
			EventType:      queueclient.BalanceUpdateEventType,
			AccountAddress: accountAddress,
			AssetID:        assetID,
			Balance:        balance,
		})
	}
	return events
}

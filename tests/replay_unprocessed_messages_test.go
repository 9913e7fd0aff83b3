package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corestake/staking-governance-service/cmd/staking-governance-service/scripts"
	"github.com/corestake/staking-governance-service/internal/db/model"
)

func TestReplayUnprocessableMessages(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	account := "account-replay.test"
	asset := "asset-replay"
	events := buildBalanceUpdateEvents(account, []string{asset}, 5000)

	data, err := json.Marshal(events[0])
	assert.NoError(t, err, "marshal events should not return an error")

	doc := string(data)

	injectDbDocuments(t, model.UnprocessableMsgCollection, model.NewUnprocessableMessageDocument(doc, "receipt"))

	db := directDbConnection(t)

	err = scripts.ReplayUnprocessableMessages(ctx, testServer.Config, testServer.Queues, db)
	assert.NoError(t, err, "replaying unprocessable messages should not fail")

	time.Sleep(3 * time.Second)

	// The replayed event went back onto the balance queue and was consumed
	balances, err := inspectDbDocuments[model.AssetBalanceDocument](t, model.AssetBalanceCollection)
	require.NoError(t, err)
	require.Equal(t, 1, len(balances))
	assert.Equal(t, account, balances[0].AccountAddress)
	assert.Equal(t, asset, balances[0].AssetID)
	assert.Equal(t, uint64(5000), balances[0].Balance)

	// The unprocessable message was deleted after a successful replay
	remaining, err := inspectDbDocuments[model.UnprocessableMessageDocument](t, model.UnprocessableMsgCollection)
	require.NoError(t, err)
	assert.Equal(t, 0, len(remaining))
}

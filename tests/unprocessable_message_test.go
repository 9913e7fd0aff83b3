package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corestake/staking-governance-service/internal/db/model"
	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
)

func TestUnprocessableMessageShouldBeStoredInDB(t *testing.T) {
	testServer := setupTestServer(t, nil)
	defer testServer.Close()

	err := sendTestMessage[string](testServer.Queues.BalanceUpdateQueueClient, []string{"a rubbish message"})
	assert.NoError(t, err)
	time.Sleep(5 * time.Second)

	// Fetch from DB and check
	docs, err := inspectDbDocuments[model.UnprocessableMessageDocument](t, model.UnprocessableMsgCollection)
	if err != nil {
		t.Fatalf("Failed to inspect DB documents: %v", err)
	}

	if len(docs) != 1 {
		t.Fatalf("Expected 1 unprocessable message, got %d", len(docs))
	}

	assert.Equal(t, "\"a rubbish message\"", docs[0].MessageBody)

	// Also make sure the message is not in the queue anymore
	count, err := inspectQueueMessageCount(t, testServer.Conn, queueclient.BalanceUpdateQueueName)
	if err != nil {
		t.Fatalf("Failed to inspect queue: %v", err)
	}
	assert.Equal(t, 0, count, "expected no message in the queue")
}

package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	queueClient "github.com/corestake/staking-governance-service/internal/queue/client"
)

// BalanceUpdateHandler mirrors balance snapshots published by the asset
// ledger into the local balance collection.
// The handler is idempotent, snapshots carry absolute balances so replaying
// the same message converges to the same state.
func (h *QueueHandler) BalanceUpdateHandler(ctx context.Context, messageBody string) error {
	var balanceUpdateEvent queueClient.BalanceUpdateEvent
	err := json.Unmarshal([]byte(messageBody), &balanceUpdateEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into BalanceUpdateEvent")
		// Park the malformed message for offline inspection and replay, then
		// ack it so it does not wedge the queue.
		saveErr := h.Services.SaveUnprocessableMessages(ctx, messageBody, uuid.NewString())
		if saveErr != nil {
			return saveErr
		}
		return nil
	}

	processErr := h.Services.ProcessBalanceUpdate(ctx, balanceUpdateEvent, time.Now().Unix())
	if processErr != nil {
		log.Ctx(ctx).Error().Err(processErr).Msg("Failed to process balance update event")
		return processErr
	}

	return nil
}

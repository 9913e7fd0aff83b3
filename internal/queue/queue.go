package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/config"
	"github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/queue/handlers"
	"github.com/corestake/staking-governance-service/internal/services"
)

type MessageHandler func(ctx context.Context, messageBody string) error

type Queues struct {
	BalanceUpdateQueueClient client.QueueClient
	StakeEventsQueueClient   client.QueueClient
	SlashEventsQueueClient   client.QueueClient
	Handlers                 *handlers.QueueHandler
	processingTimeout        time.Duration
}

func New(cfg config.QueueConfig, service *services.Services) *Queues {
	balanceUpdateQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, client.BalanceUpdateQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating BalanceUpdateQueueClient")
	}
	stakeEventsQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, client.StakeEventsQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating StakeEventsQueueClient")
	}
	slashEventsQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, client.SlashEventsQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating SlashEventsQueueClient")
	}

	service.AttachEventQueues(stakeEventsQueueClient, slashEventsQueueClient)

	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		BalanceUpdateQueueClient: balanceUpdateQueueClient,
		StakeEventsQueueClient:   stakeEventsQueueClient,
		SlashEventsQueueClient:   slashEventsQueueClient,
		Handlers:                 handlers,
		processingTimeout:        time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	// start processing balance snapshots from the asset ledger
	startQueueMessageProcessing(q.BalanceUpdateQueueClient, q.Handlers.BalanceUpdateHandler, log.Logger, q.processingTimeout)
	// ...add more consumed queues here
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	q.BalanceUpdateQueueClient.Stop()
	q.StakeEventsQueueClient.Stop()
	q.SlashEventsQueueClient.Stop()
}

func (q *Queues) IsConnectionHealthy() error {
	return q.BalanceUpdateQueueClient.Ping()
}

func startQueueMessageProcessing(
	queueClient client.QueueClient, handler MessageHandler,
	logger zerolog.Logger, timeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err := handler(ctx, message.Body)
			if err != nil {
				logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while processing message from queue")
				cancel()
				continue
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}

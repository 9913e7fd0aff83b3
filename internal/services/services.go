package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/internal/clients"
	"github.com/corestake/staking-governance-service/internal/config"
	"github.com/corestake/staking-governance-service/internal/db"
	"github.com/corestake/staking-governance-service/internal/observability/metrics"
	queueclient "github.com/corestake/staking-governance-service/internal/queue/client"
	"github.com/corestake/staking-governance-service/internal/types"
)

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	Clients  *clients.Clients
	cfg      *config.Config

	stakeEventsClient queueclient.QueueClient
	slashEventsClient queueclient.QueueClient
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient: dbClient,
		Clients:  clients,
		cfg:      cfg,
	}, nil
}

// AttachEventQueues wires the publisher side of the event plumbing. Domain
// events are advisory: a publish failure is logged and never fails the
// operation that produced it.
func (s *Services) AttachEventQueues(stakeEvents, slashEvents queueclient.QueueClient) {
	s.stakeEventsClient = stakeEvents
	s.slashEventsClient = slashEvents
}

// SeedGovernanceParams writes the initial governance params document if it
// does not exist yet. Called once at startup.
func (s *Services) SeedGovernanceParams(ctx context.Context, now int64) error {
	return s.DbClient.InitGovernanceParams(
		ctx, s.cfg.Governance.InitialApprovalThreshold, s.cfg.Governance.TreasuryAddress, now,
	)
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) *types.Error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}

func (s *Services) emitEvent(ctx context.Context, client queueclient.QueueClient, event any) {
	if client == nil {
		log.Ctx(ctx).Debug().Msg("event queue not attached, skipping event emission")
		return
	}
	jsonBytes, err := json.Marshal(event)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to marshal domain event")
		return
	}
	if err := client.SendMessage(ctx, string(jsonBytes)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("queueName", client.GetQueueName()).
			Msg("failed to publish domain event")
		return
	}
	metrics.RecordEventPublished(client.GetQueueName())
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/corestake/staking-governance-service/cmd/staking-governance-service/cli"
	"github.com/corestake/staking-governance-service/cmd/staking-governance-service/scripts"
	"github.com/corestake/staking-governance-service/internal/api"
	"github.com/corestake/staking-governance-service/internal/clients"
	"github.com/corestake/staking-governance-service/internal/config"
	"github.com/corestake/staking-governance-service/internal/db/model"
	"github.com/corestake/staking-governance-service/internal/observability/healthcheck"
	"github.com/corestake/staking-governance-service/internal/observability/metrics"
	"github.com/corestake/staking-governance-service/internal/queue"
	"github.com/corestake/staking-governance-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up governance db model")
	}

	clients := clients.New(cfg)
	services, err := services.New(ctx, cfg, clients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up governance services layer")
	}
	if err = services.SeedGovernanceParams(ctx, time.Now().Unix()); err != nil {
		log.Fatal().Err(err).Msg("error while seeding governance params")
	}

	// Start the event queue processing
	queues := queue.New(cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	if err = healthcheck.StartHealthCheckCron(ctx, queues, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up governance api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting governance api service")
	}
}

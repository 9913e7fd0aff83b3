package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/corestake/staking-governance-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/stake", registerHandler(handlers.Deposit))
	r.Post("/v1/stake/batch", registerHandler(handlers.BatchDeposit))
	r.Get("/v1/stake/positions", registerHandler(handlers.GetStakePositions))
	r.Post("/v1/slash/propose", registerHandler(handlers.ProposeSlash))
	r.Post("/v1/slash/approve", registerHandler(handlers.ApproveSlash))
	r.Get("/v1/slash/proposals", registerHandler(handlers.GetSlashProposals))
	r.Get("/v1/governance/params", registerHandler(handlers.GetGovernanceParams))

	r.Post("/v1/admin/roles/grant", registerHandler(handlers.GrantRole))
	r.Post("/v1/admin/roles/revoke", registerHandler(handlers.RevokeRole))
	r.Post("/v1/admin/timelock/schedule", registerHandler(handlers.ScheduleTimelock))
	r.Post("/v1/admin/treasury", registerHandler(handlers.UpdateTreasury))
	r.Post("/v1/admin/threshold", registerHandler(handlers.UpdateThreshold))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

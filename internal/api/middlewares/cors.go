package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/corestake/staking-governance-service/internal/config"
)

const (
	maxAge = 300
)

func CorsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			options := cors.Options{
				AllowedOrigins: cfg.Server.AllowedOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodPost},
				MaxAge:         maxAge,
			}
			cors := cors.New(options)
			corsHandler := cors.Handler(next)

			corsHandler.ServeHTTP(w, r)
		})
	}
}

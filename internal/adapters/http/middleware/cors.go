package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control-* headers for the configured origins. A "*" entry allows
// any origin; credentials are never allowed in that case.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type", headerRequestID, headerCorrelationID},
		ExposedHeaders:   []string{headerRequestID, headerCorrelationID},
		AllowCredentials: false,
		MaxAge:           cfg.MaxAge,
	})
}

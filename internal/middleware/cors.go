package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the whole handler so preflight requests are answered before
// gin routing. An empty origin list allows every origin.
func CORS(next http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", RequestIDHeader, IdempotencyHeader},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(next)
}

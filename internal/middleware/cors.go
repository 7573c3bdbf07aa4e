package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware configures the wide-open CORS policy: all origins,
// methods, and headers are allowed.
func CORSMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

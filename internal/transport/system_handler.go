package transport

import (
	"net/http"
	"os"

	"mk-store/internal/database"
	"mk-store/internal/middleware"
	"mk-store/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SystemHandler serves the liveness and store-connectivity diagnostics.
type SystemHandler struct {
	db     database.Service
	store  store.Store
	logger *zap.Logger
}

// NewSystemHandler creates a new SystemHandler. db and store may be nil
// when the store is not configured; the diagnostics report that state.
func NewSystemHandler(db database.Service, st store.Store, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		store:  st,
		logger: logger,
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Get("/test", h.Test)
}

// Root handles GET / as a liveness message.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "MK Store API is running",
	})
}

// TestResponse describes store connectivity for GET /test.
type TestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Test handles GET /test. It introspects environment configuration and
// probes the store without failing the request on store errors.
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	response := TestResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db == nil || h.store == nil {
		middleware.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	health := h.db.Health()
	if health["status"] != "up" {
		response.Database = "error: " + health["error"]
		middleware.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	response.Database = "available"
	response.ConnectionStatus = "connected"

	collections, err := h.store.Collections(r.Context())
	if err != nil {
		h.logger.Warn("Failed to list collections", zap.Error(err))
		response.Database = "connected but error: " + err.Error()
		middleware.RespondWithJSON(w, http.StatusOK, response)
		return
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response.Collections = collections
	response.Database = "connected and working"

	middleware.RespondWithJSON(w, http.StatusOK, response)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

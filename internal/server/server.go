package server

import (
	"fmt"
	"net/http"
	"time"

	"mk-store/internal/config"
	"mk-store/internal/database"
	custommiddleware "mk-store/internal/middleware"
	"mk-store/internal/service"
	"mk-store/internal/store"
	"mk-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
}

// NewServer wires the router, middleware, and handlers. The database
// service is injected explicitly; no handler reads process-wide state.
func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware())
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Initialize store and services
	st := store.New(db.DB())
	catalog := service.NewCatalogService(st)
	orders := service.NewOrderService(st)

	// Initialize handlers
	systemHandler := transport.NewSystemHandler(db, st, logger)
	productHandler := transport.NewProductHandler(catalog, logger)
	orderHandler := transport.NewOrderHandler(orders, logger)

	// Register routes
	systemHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}

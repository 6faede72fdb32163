package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jobportal/job-portal-service/common/config"
	"github.com/jobportal/job-portal-service/common/db"
	"github.com/jobportal/job-portal-service/common/messaging"
	"github.com/jobportal/job-portal-service/common/utils"
	"github.com/jobportal/job-portal-service/handler"
	"github.com/jobportal/job-portal-service/jobs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type AppHttpServer struct {
	router *chi.Mux
	cfg    config.Config
	server *http.Server
	db     *db.DB
	broker *messaging.NatsBroker
}

func NewAppHttpServer(cfg config.Config) (*AppHttpServer, error) {
	r := chi.NewRouter()

	// Basic CORS; the portal frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	server := &AppHttpServer{
		router: r,
		cfg:    cfg,
	}
	return server, nil
}

// SetDB sets the database dependency
func (s *AppHttpServer) SetDB(db *db.DB) {
	s.db = db
}

// SetBroker sets the event broker dependency; nil disables publishing.
func (s *AppHttpServer) SetBroker(broker *messaging.NatsBroker) {
	s.broker = broker
}

func (s *AppHttpServer) setupRoute() {
	r := s.router

	if s.db == nil {
		log.Fatal().Msg("DB dependency not set")
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusOK, "Welcome to Job Portal API")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	store := jobs.NewStore(s.db)
	jobHandler := handler.NewJobHandler(store, s.broker)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/jobs", jobHandler.Router())
	})
}

func (s *AppHttpServer) start() error {
	r := s.router
	cfg := s.cfg
	log.Info().Msg("Starting up server...")

	s.server = &http.Server{
		Addr:         cfg.Listen.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// stop gracefully shuts down the server
func (s *AppHttpServer) stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

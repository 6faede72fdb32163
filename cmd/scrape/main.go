package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jobportal/job-portal-service/common/config"
	"github.com/jobportal/job-portal-service/common/db"
	"github.com/jobportal/job-portal-service/common/logger"
	"github.com/jobportal/job-portal-service/common/messaging"
	"github.com/jobportal/job-portal-service/common/redis"
	"github.com/jobportal/job-portal-service/common/storage"
	"github.com/jobportal/job-portal-service/jobs"
	"github.com/jobportal/job-portal-service/scraper"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file, using environment variables")
	}

	cfg := config.DefaultConfig()
	cfg.LoadFromEnv()

	logger.Setup(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the run on interrupt so the browser shuts down cleanly.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info().Msg("Shutdown signal received")
		cancel()
	}()

	s := scraper.New(cfg.Scraper)

	// The database is optional for the scraper; without it the run still
	// submits postings through the API, it just leaves no run record.
	dbConn, err := db.SetupDatabase(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, scrape runs will not be recorded")
	} else {
		defer dbConn.Close()
		if err := dbConn.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure database schema")
		}
		s.SetRunLog(jobs.NewStore(dbConn))
		if dbConn.Redis != nil {
			s.SetCache(dbConn.Redis)
		}
	}

	// Without the database handle the seen-cache is still worth having.
	if dbConn == nil && cfg.Redis.Enabled() {
		cache, err := redis.NewClient(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, seen-cache disabled")
		} else {
			defer cache.Close()
			s.SetCache(cache)
		}
	}

	if cfg.GCS.Enabled() {
		archive, err := storage.NewGCSStorage(ctx, cfg.GCS)
		if err != nil {
			log.Warn().Err(err).Msg("GCS unavailable, snapshot archiving disabled")
		} else {
			s.SetArchive(archive, cfg.GCS.Bucket)
		}
	}

	natsClient, err := messaging.Setup(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, run events disabled")
	} else {
		defer natsClient.Close()
		s.SetNotify(func(summary scraper.RunSummary, runID string) {
			natsClient.PublishScrapeRunEvent(messaging.ScrapeRunEvent{
				RunID:      runID,
				Source:     cfg.Scraper.TargetURL,
				CardsFound: summary.CardsFound,
				Posted:     summary.Posted,
				Skipped:    summary.Skipped,
				Dropped:    summary.Dropped,
			})
		})
	}

	if err := s.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up browser")
	}
	defer func() {
		if err := s.Teardown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Browser teardown failed")
		}
	}()

	if _, err := s.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Scrape run failed")
	}
}

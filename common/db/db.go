package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jobportal/job-portal-service/common/config"
	"github.com/jobportal/job-portal-service/common/redis"

	zerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"

	"github.com/rs/zerolog/log"
)

// DB provides access to the database. Redis is nil when the cache is not
// configured; callers must treat it as optional.
type DB struct {
	Pool  *pgxpool.Pool
	Redis *redis.RedisClient
}

// New creates a new DB instance
func New(pool *pgxpool.Pool, redis *redis.RedisClient) (*DB, error) {
	if pool == nil {
		return nil, errors.New("cannot use nil database pool")
	}
	return &DB{
		Pool:  pool,
		Redis: redis,
	}, nil
}

// Close closes the database connection
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
	if db.Redis != nil {
		if err := db.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing Redis client")
		}
	}
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// SetupDatabase initializes the database connection
func SetupDatabase(ctx context.Context, cfg config.Config) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.PgSql.ConnStr())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}

	// Configure connection pool for better performance and reliability
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// Setup logger; scrape_runs bookkeeping writes are filtered out to keep
	// the query log focused on job traffic.
	logger := zerolog.NewLogger(log.Logger)
	poolConfig.ConnConfig.Tracer = &FilteredTracer{
		inner: &tracelog.TraceLog{
			Logger:   logger,
			LogLevel: tracelog.LogLevelInfo,
		},
		skipTable: "scrape_runs",
	}

	pgsqlClient, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Test connection
	if err := pgsqlClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	var redisClient *redis.RedisClient
	if cfg.Redis.Enabled() {
		redisClient, err = redis.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating Redis client: %w", err)
		}
	}

	dbConn, err := New(pgsqlClient, redisClient)
	if err != nil {
		return nil, fmt.Errorf("creating DB handler: %w", err)
	}

	return dbConn, nil
}

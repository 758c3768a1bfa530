package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/config"
	"blog-backend/pkg/logger"
)

type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *config.DatabaseConfig
}

func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Name,
		db.Config.SSLMode,
	)
}

// Connect establishes the pool, retrying with exponential backoff so a
// database that is still starting does not kill the process.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = db.Config.MaxConns
	poolConfig.MinConns = db.Config.MinConns
	poolConfig.MaxConnLifetime = db.Config.MaxConnLifetime
	poolConfig.MaxConnIdleTime = db.Config.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = db.Config.HealthCheckPeriod

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= db.Config.ConnectRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}

		if attempt == db.Config.ConnectRetries {
			return fmt.Errorf("failed to connect to database after %d attempts: %w", attempt, err)
		}

		backoff := time.Duration(1<<(attempt-1)) * time.Second
		logger.Warn(fmt.Sprintf("database connection attempt %d failed, retrying in %s", attempt, backoff), err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	db.Pool = pool
	logger.Info("database connected", map[string]interface{}{
		"host": db.Config.Host,
		"name": db.Config.Name,
	})

	return nil
}

func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	return db.Pool.Ping(ctx)
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

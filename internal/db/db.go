package db

import (
	"context"
	"time"

	"pairplay/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

// Connect opens the shared pgx pool and verifies the database is reachable
// before the server starts taking traffic. The engine cannot run without its
// session store, so boot-time connection problems are fatal.
func Connect(dsn string) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("invalid database url", "error", err)
	}
	// advisory session locks each pin a pooled connection while held; keep
	// enough headroom that lock holders cannot starve regular queries
	if cfg.MaxConns < 8 {
		cfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("database unreachable", "host", cfg.ConnConfig.Host, "error", err)
	}

	logger.Info("database connected", "max_conns", cfg.MaxConns)
	return pool
}

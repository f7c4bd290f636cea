package main

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"forecast-market/internal/config"
)

// Bootstraps the snapshot schema on PostgreSQL directly, for deployments
// where the server runs without DDL privileges and AutoMigrate cannot be
// used. SQLite deployments never need this; the server migrates itself.

var statements = []string{
	`CREATE TABLE IF NOT EXISTS snapshot_markets (
		id BIGINT PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		description TEXT,
		category VARCHAR(50),
		creator VARCHAR(128),
		close_date BIGINT,
		status VARCHAR(50),
		yes_shares BIGINT,
		no_shares BIGINT,
		yes_liquidity BIGINT,
		no_liquidity BIGINT,
		total_volume BIGINT,
		created_at BIGINT,
		resolved_outcome BOOLEAN
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_trades (
		id BIGINT PRIMARY KEY,
		seq BIGINT,
		market_id BIGINT,
		trader VARCHAR(128),
		is_yes BOOLEAN,
		shares BIGINT,
		price BIGINT,
		timestamp BIGINT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_trades_seq ON snapshot_trades(seq)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_trades_market_id ON snapshot_trades(market_id)`,
	`CREATE TABLE IF NOT EXISTS snapshot_profiles (
		principal VARCHAR(128) PRIMARY KEY,
		username VARCHAR(64),
		xp BIGINT,
		total_trades BIGINT,
		successful_predictions BIGINT,
		badges_json TEXT,
		created_at BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_comments (
		id BIGINT PRIMARY KEY,
		seq BIGINT,
		market_id BIGINT,
		author VARCHAR(128),
		content VARCHAR(500),
		timestamp BIGINT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_comments_seq ON snapshot_comments(seq)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshot_comments_market_id ON snapshot_comments(market_id)`,
	`CREATE TABLE IF NOT EXISTS snapshot_insights (
		market_id BIGINT PRIMARY KEY,
		summary TEXT,
		confidence DOUBLE PRECISION,
		risks_json TEXT,
		prediction_lean BOOLEAN,
		generated_at BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_engine_state (
		id BIGINT PRIMARY KEY,
		next_market_id BIGINT,
		next_trade_id BIGINT,
		next_comment_id BIGINT,
		treasury BIGINT,
		saved_at BIGINT
	)`,
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Snapshot.Driver != "postgres" {
		log.Fatalf("SNAPSHOT_DRIVER must be postgres for this tool, got %q", cfg.Snapshot.Driver)
	}

	db, err := sql.Open("postgres", cfg.Snapshot.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Failed to apply migration: %v", err)
		}
	}

	log.Println("✅ Snapshot schema created successfully!")
}

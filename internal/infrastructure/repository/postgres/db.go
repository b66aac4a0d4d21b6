package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS negocios (
	id TEXT PRIMARY KEY,
	nombre TEXT NOT NULL,
	email TEXT NOT NULL,
	categoria_slug TEXT NOT NULL DEFAULT '',
	ciudad TEXT NOT NULL DEFAULT '',
	barrio TEXT NOT NULL DEFAULT '',
	telefono TEXT NOT NULL DEFAULT '',
	web TEXT NOT NULL DEFAULT '',
	descripcion TEXT NOT NULL DEFAULT '',
	estado TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_negocios_estado ON negocios(estado);
CREATE INDEX IF NOT EXISTS idx_negocios_categoria_ciudad ON negocios(categoria_slug, ciudad);

CREATE TABLE IF NOT EXISTS negocio_tokens (
	token_digest TEXT PRIMARY KEY,
	negocio_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_negocio_tokens_negocio ON negocio_tokens(negocio_id);

CREATE TABLE IF NOT EXISTS seguimiento_directorios (
	id TEXT PRIMARY KEY,
	negocio_id TEXT NOT NULL,
	directorio_slug TEXT NOT NULL,
	estado TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (negocio_id, directorio_slug)
);

CREATE TABLE IF NOT EXISTS negocio_stats (
	negocio_id TEXT PRIMARY KEY,
	pendientes INTEGER NOT NULL DEFAULT 0,
	registrados INTEGER NOT NULL DEFAULT 0,
	activos INTEGER NOT NULL DEFAULT 0,
	rechazados INTEGER NOT NULL DEFAULT 0,
	total INTEGER NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL
);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"fmt"
	"strings"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS muteffikler (
		id         {{id}},
		isim       TEXT NOT NULL UNIQUE,
		tur        TEXT NOT NULL,
		bilgi      TEXT,
		created_at {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS dusmanlar (
		id         {{id}},
		isim       TEXT NOT NULL UNIQUE,
		tur        TEXT NOT NULL,
		neden      TEXT,
		created_at {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS as_kadro (
		id           {{id}},
		isim         TEXT NOT NULL UNIQUE,
		rol          TEXT NOT NULL,
		giris_tarihi TEXT NOT NULL,
		created_at   {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS ks_bilgi (
		id         {{id}},
		baslik     TEXT NOT NULL UNIQUE,
		bilgi      TEXT NOT NULL,
		created_at {{ts}}
	)`,
	`CREATE TABLE IF NOT EXISTS sunucular (
		id         {{id}},
		isim       TEXT NOT NULL UNIQUE,
		ip         TEXT NOT NULL,
		port       TEXT,
		bilgi      TEXT,
		created_at {{ts}}
	)`,
}

// EnsureSchema creates the category tables when missing. It never alters
// existing tables.
func EnsureSchema(ctx context.Context, db *DB) error {
	id, ts := "SERIAL PRIMARY KEY", "TIMESTAMPTZ NOT NULL DEFAULT now()"
	if db.Dialect == SQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
		ts = "TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))"
	}
	r := strings.NewReplacer("{{id}}", id, "{{ts}}", ts)
	for _, stmt := range tables {
		if _, err := db.ExecContext(ctx, r.Replace(stmt)); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

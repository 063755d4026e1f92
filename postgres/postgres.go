// Package postgres stores the canonical hashid codec parameters in a
// Postgres database. Hashes only interoperate between services that share
// the exact salt, minimum length, and alphabet, so the database acts as the
// single source of truth for a deployment: every instance migrates against
// it at startup and fails fast on a parameter mismatch instead of silently
// producing incompatible hashes.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paraglidehq/hashid"
)

// Config holds the codec parameters shared by every service of a
// deployment.
type Config struct {
	Salt      string
	MinLength int
	Alphabet  string
}

// DefaultConfig returns the unsalted default codec parameters.
// Use this only for development; production deployments should set a salt.
func DefaultConfig() Config {
	return Config{
		Salt:      "",
		MinLength: 0,
		Alphabet:  hashid.DefaultAlphabet,
	}
}

// Codec builds a codec from the configuration.
func (c Config) Codec() *hashid.Codec {
	return hashid.NewCodec(c.Salt, c.MinLength, c.Alphabet)
}

var ErrConfigMismatch = errors.New("hashid: database config does not match application config")

// Migrate runs the idempotent hashid migration with the given
// configuration. If the database already holds a different configuration,
// it returns ErrConfigMismatch and changes nothing.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _hashid_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			salt text NOT NULL,
			min_length int NOT NULL,
			alphabet text NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("hashid: create config table: %w", err)
	}

	stored, err := GetConfig(ctx, db)
	if err == nil {
		if stored != cfg {
			return fmt.Errorf("%w: db has salt=%q min_length=%d alphabet=%q, app has salt=%q min_length=%d alphabet=%q",
				ErrConfigMismatch, stored.Salt, stored.MinLength, stored.Alphabet, cfg.Salt, cfg.MinLength, cfg.Alphabet)
		}
	} else if errors.Is(err, sql.ErrNoRows) {
		_, err = db.ExecContext(ctx, `INSERT INTO _hashid_config (salt, min_length, alphabet) VALUES ($1, $2, $3)`,
			cfg.Salt, cfg.MinLength, cfg.Alphabet)
		if err != nil {
			return fmt.Errorf("hashid: insert config: %w", err)
		}
	} else {
		return fmt.Errorf("hashid: read config: %w", err)
	}

	// Accessor functions for debugging and cross-service checks. They read
	// the config table so no parameter is ever embedded in a function body.
	_, err = db.ExecContext(ctx, `
		CREATE OR REPLACE FUNCTION hashid_salt()
		  RETURNS text LANGUAGE sql STABLE
		  AS $$ SELECT salt FROM _hashid_config $$;

		CREATE OR REPLACE FUNCTION hashid_min_length()
		  RETURNS int LANGUAGE sql STABLE
		  AS $$ SELECT min_length FROM _hashid_config $$;

		CREATE OR REPLACE FUNCTION hashid_alphabet()
		  RETURNS text LANGUAGE sql STABLE
		  AS $$ SELECT alphabet FROM _hashid_config $$;
	`)
	if err != nil {
		return fmt.Errorf("hashid: create accessor functions: %w", err)
	}

	return nil
}

// GetConfig reads the codec configuration from the database.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	err := db.QueryRowContext(ctx, `SELECT salt, min_length, alphabet FROM _hashid_config`).
		Scan(&cfg.Salt, &cfg.MinLength, &cfg.Alphabet)
	return cfg, err
}

// Load builds a codec from the configuration stored in the database.
// Call after Migrate, typically once at startup.
func Load(ctx context.Context, db *sql.DB) (*hashid.Codec, error) {
	cfg, err := GetConfig(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("hashid: load config: %w", err)
	}
	return cfg.Codec(), nil
}

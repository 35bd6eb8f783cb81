package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/healthguard/internal/common"
	"github.com/dmitrijs2005/healthguard/internal/dbx"
	"github.com/dmitrijs2005/healthguard/internal/directory/migrations"
	"github.com/dmitrijs2005/healthguard/internal/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresDirectory reads credential entries from the credentials table.
type PostgresDirectory struct {
	db dbx.DBTX
}

func NewPostgresDirectory(db dbx.DBTX) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) Lookup(ctx context.Context, username string) (models.CredentialEntry, error) {
	query :=
		`SELECT username, password, profile FROM credentials
		 WHERE username = $1
		 `

	var (
		entry   models.CredentialEntry
		profile []byte
	)
	err := d.db.QueryRowContext(ctx, query, username).Scan(&entry.Username, &entry.Password, &profile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CredentialEntry{}, common.ErrorNotFound
		}
		return models.CredentialEntry{}, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(profile, &entry.Profile); err != nil {
		return models.CredentialEntry{}, fmt.Errorf("decode profile of %q: %w", username, err)
	}
	return entry, nil
}

// Seed upserts entries in a single transaction.
func Seed(ctx context.Context, db *sql.DB, entries []models.CredentialEntry) error {
	query :=
		`INSERT INTO credentials (username, password, profile)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE
		 SET password = EXCLUDED.password, profile = EXCLUDED.profile
		 `

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range entries {
			profile, err := json.Marshal(e.Profile)
			if err != nil {
				return fmt.Errorf("encode profile of %q: %w", e.Username, err)
			}
			if _, err := tx.ExecContext(ctx, query, e.Username, e.Password, profile); err != nil {
				return fmt.Errorf("seed %q: %w", e.Username, err)
			}
		}
		return nil
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations creates the credentials table.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// OpenPostgres connects to dsn via the pgx stdlib driver and migrates the
// credentials table. When seed is true the default entries are upserted.
func OpenPostgres(ctx context.Context, dsn string, seed bool) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if seed {
		if err := Seed(ctx, db, DefaultEntries()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

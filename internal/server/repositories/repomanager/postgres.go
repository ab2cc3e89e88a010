package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/unity/internal/dbx"
	"github.com/dmitrijs2005/unity/internal/server/migrations"
	"github.com/dmitrijs2005/unity/internal/server/repositories/listings"
	"github.com/dmitrijs2005/unity/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/unity/internal/server/repositories/purchases"
	"github.com/dmitrijs2005/unity/internal/server/repositories/upgrades"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// sqlRepositories binds every PostgreSQL repository to one DBTX.
type sqlRepositories struct {
	db dbx.DBTX
}

func (r sqlRepositories) Listings() listings.Repository   { return listings.NewPostgresRepository(r.db) }
func (r sqlRepositories) Upgrades() upgrades.Repository   { return upgrades.NewPostgresRepository(r.db) }
func (r sqlRepositories) Purchases() purchases.Repository { return purchases.NewPostgresRepository(r.db) }
func (r sqlRepositories) Profiles() profiles.Repository   { return profiles.NewPostgresRepository(r.db) }

// PostgresRepositoryManager serves repositories over a *sql.DB opened with
// the pgx driver.
type PostgresRepositoryManager struct {
	sqlRepositories
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenPostgres opens dsn with pgx and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{sqlRepositories: sqlRepositories{db: db}, db: db}
}

func (m *PostgresRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, sqlRepositories{db: tx})
	})
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// Package repomanager vends the SQL repositories bound to a connection or a
// transaction and owns schema migrations (embedded goose files, one set per
// dialect).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/migrations"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/comments"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/posts"
	"github.com/trollterminator/Miniprojekt/internal/server/repositories/users"
)

// Storage drivers accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Comments(db dbx.DBTX) comments.Repository
}

// sqlRepositories holds the repository factories shared by both dialects;
// only the placeholder style differs.
type sqlRepositories struct {
	ph dbx.Placeholder
}

func (r sqlRepositories) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, r.ph)
}

func (r sqlRepositories) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewSQLRepository(db, r.ph)
}

func (r sqlRepositories) Comments(db dbx.DBTX) comments.Repository {
	return comments.NewSQLRepository(db, r.ph)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Open connects to the store selected by driver, verifies the connection and
// brings the schema up to date.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		m          RepositoryManager
		driverName string
	)

	switch driver {
	case DriverPostgres:
		m, driverName = NewPostgresRepositoryManager(), "pgx"
	case DriverSQLite:
		m, driverName = NewSQLiteRepositoryManager(), "sqlite"
		dsn = withForeignKeys(dsn)
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, m, nil
}

// withForeignKeys makes sure every SQLite connection enforces foreign keys,
// which cascade deletes depend on.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

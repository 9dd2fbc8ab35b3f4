package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/migrations"
)

// PostgresRepositoryManager serves PostgreSQL through the pgx stdlib driver.
type PostgresRepositoryManager struct {
	sqlRepositories
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{sqlRepositories{ph: dbx.Dollar}}
}

// RunMigrations applies the embedded postgres migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "pgx", migrations.PostgresDir)
}

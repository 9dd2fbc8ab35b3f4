package repomanager

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/trollterminator/Miniprojekt/internal/dbx"
	"github.com/trollterminator/Miniprojekt/internal/server/migrations"
)

// SQLiteRepositoryManager serves an embedded SQLite database (modernc.org/sqlite).
type SQLiteRepositoryManager struct {
	sqlRepositories
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{sqlRepositories{ph: dbx.Question}}
}

// RunMigrations applies the embedded sqlite migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir)
}

package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"wastewise-admin-service/internal/platform/logger"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const Dir = "migrations"

// goose keeps its dialect and base FS in package globals.
var gooseMu sync.Mutex

// Run executes a goose command ("up", "down", "status", "reset", ...) against
// the embedded migrations.
func Run(ctx context.Context, db *sql.DB, dialect string, logg *logger.Logger, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("migrate: db is required")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{ctx: ctx, logg: logg})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: set goose dialect %q: %w", dialect, err)
	}

	if err := goose.RunContext(ctx, command, db, Dir, args...); err != nil {
		return fmt.Errorf("migrate: goose %s: %w", command, err)
	}
	return nil
}

// Version returns the applied schema version.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("migrate: set goose dialect %q: %w", dialect, err)
	}
	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migrate: get db version: %w", err)
	}
	return v, nil
}

type gooseLogger struct {
	ctx  context.Context
	logg *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	if g.logg == nil {
		return
	}
	g.logg.Info(g.ctx, fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	if g.logg == nil {
		return
	}
	g.logg.Error(g.ctx, fmt.Sprintf(format, v...), nil)
}

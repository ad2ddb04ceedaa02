// Command dbtool applies the embedded migrations and loads demo data.
//
//	dbtool migrate [up|down|status|reset|version]
//	dbtool seed [path]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"wastewise-admin-service/internal/adapters/repositories"
	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.New(logger.Options{
		ServiceName: "wastewise-dbtool",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      config.Get("WASTEWISE_DBTOOL_LOG_FORMAT", "console"),
	})

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
	}

	ctx := context.Background()
	switch args[0] {
	case "migrate":
		command := "up"
		if len(args) > 1 {
			command = args[1]
		}
		err = runMigrate(ctx, cfg.DB, logg, command, args[2:]...)
	case "seed":
		path := cfg.Seed.Path
		if len(args) > 1 {
			path = args[1]
		}
		err = runSeed(ctx, cfg.DB, logg, path)
	default:
		usage()
	}
	if err != nil {
		logg.Error(ctx, "dbtool failed", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dbtool migrate [up|down|status|reset|version] | dbtool seed [path]")
	os.Exit(2)
}

// runMigrate talks to postgres through pgx's database/sql driver and to sqlite
// through the GORM connection.
func runMigrate(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, command string, args ...string) error {
	sqlDB, dialect, closeDB, err := openSQL(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer closeDB()

	if command == "version" {
		v, err := migrate.Version(ctx, sqlDB, dialect)
		if err != nil {
			return err
		}
		logg.Info(logg.WithField(ctx, "version", v), "schema version")
		return nil
	}
	return migrate.Run(ctx, sqlDB, dialect, logg, command, args...)
}

func openSQL(ctx context.Context, cfg config.DBConfig, logg *logger.Logger) (*sql.DB, string, func(), error) {
	if strings.EqualFold(cfg.Driver, config.DriverPostgres) {
		sqlDB, err := sql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, "", nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, "", nil, fmt.Errorf("ping postgres: %w", err)
		}
		return sqlDB, "postgres", func() { _ = sqlDB.Close() }, nil
	}

	client, err := db.Open(ctx, cfg, logg)
	if err != nil {
		return nil, "", nil, err
	}
	sqlDB, err := client.SQL()
	if err != nil {
		_ = client.Close()
		return nil, "", nil, err
	}
	return sqlDB, client.Dialect(), func() { _ = client.Close() }, nil
}

func runSeed(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, path string) error {
	client, err := db.Open(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer client.Close()

	counts, err := repositories.SeedFromJSON(ctx, client, path)
	if err != nil {
		return err
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"path":        path,
		"users":       counts.Users,
		"workers":     counts.Workers,
		"zones":       counts.Zones,
		"routes":      counts.Routes,
		"vehicles":    counts.Vehicles,
		"logs":        counts.Logs,
		"assignments": counts.Assignments,
	}), "seed complete")
	return nil
}

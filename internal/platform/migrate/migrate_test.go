package migrate

import (
	"context"
	"testing"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/platform/logger"
)

func openTestDB(t *testing.T, name string) *db.Client {
	t.Helper()
	client, err := db.Open(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	}, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestUpCreatesEveryTable(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t, "migrate_up")

	sqlDB, err := client.SQL()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	if err := Run(ctx, sqlDB, client.Dialect(), logger.Nop(), "up"); err != nil {
		t.Fatalf("goose up: %v", err)
	}

	for _, table := range []string{"users", "workers", "zones", "routes", "vehicles", "collection_logs", "assignments"} {
		if !client.DB().Migrator().HasTable(table) {
			t.Fatalf("expected table %q after migration", table)
		}
	}

	v, err := Version(ctx, sqlDB, client.Dialect())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 2 {
		t.Fatalf("version = %d, want 2", v)
	}
}

func TestMaybeRunSkipsWhenDisabled(t *testing.T) {
	client := openTestDB(t, "migrate_skip")
	cfg := &config.Config{DB: config.DBConfig{AutoMigrate: false}}

	if err := MaybeRun(context.Background(), cfg, logger.Nop(), client); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.DB().Migrator().HasTable("zones") {
		t.Fatal("zones table should not exist when auto-migrate is off")
	}
}

func TestDownRemovesActivityTables(t *testing.T) {
	ctx := context.Background()
	client := openTestDB(t, "migrate_down")
	sqlDB, _ := client.SQL()

	if err := Run(ctx, sqlDB, client.Dialect(), nil, "up"); err != nil {
		t.Fatalf("goose up: %v", err)
	}
	if err := Run(ctx, sqlDB, client.Dialect(), nil, "down"); err != nil {
		t.Fatalf("goose down: %v", err)
	}
	if client.DB().Migrator().HasTable("collection_logs") {
		t.Fatal("collection_logs should be dropped by the last down migration")
	}
	if !client.DB().Migrator().HasTable("zones") {
		t.Fatal("zones should survive a single down step")
	}
}

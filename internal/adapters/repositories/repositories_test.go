package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/platform/migrate"
	"wastewise-admin-service/internal/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestClient(t).DB()
}

func newTestClient(t *testing.T) *db.Client {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	client, err := db.Open(ctx, config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	}, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	sqlDB, err := client.SQL()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	if err := migrate.Run(ctx, sqlDB, client.Dialect(), nil, "up"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func TestZoneRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormZoneRepository(newTestDB(t))

	z := &domain.Zone{ID: "Z001", Name: "North", AreaCoverage: "Sectors 1-4"}
	if err := repo.Create(ctx, z); err != nil {
		t.Fatalf("create: %v", err)
	}
	if z.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be populated")
	}

	if err := repo.Create(ctx, &domain.Zone{ID: "Z001", Name: "Dup"}); !errors.Is(err, ports.ErrDuplicate) {
		t.Fatalf("duplicate create err = %v, want ErrDuplicate", err)
	}

	z.Name = "North Ward"
	if err := repo.Update(ctx, z); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByID(ctx, "Z001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "North Ward" {
		t.Fatalf("name = %q, want North Ward", got.Name)
	}

	if err := repo.Update(ctx, &domain.Zone{ID: "Z404", Name: "x"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("update missing err = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteByID(ctx, "Z001"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByID(ctx, "Z001"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "Z001"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("get deleted err = %v, want ErrNotFound", err)
	}
}

func TestDeletingZoneKeepsRoutes(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	zones := NewGormZoneRepository(gdb)
	routes := NewGormRouteRepository(gdb)

	if err := zones.Create(ctx, &domain.Zone{ID: "Z1", Name: "East"}); err != nil {
		t.Fatalf("create zone: %v", err)
	}
	for _, r := range []*domain.Route{
		{ID: "R2", ZoneID: "Z1", Name: "Second"},
		{ID: "R1", ZoneID: "Z1", Name: "First"},
		{ID: "R3", ZoneID: "Z2", Name: "Elsewhere"},
	} {
		if err := routes.Create(ctx, r); err != nil {
			t.Fatalf("create route %s: %v", r.ID, err)
		}
	}

	if err := zones.DeleteByID(ctx, "Z1"); err != nil {
		t.Fatalf("delete zone: %v", err)
	}

	inZone, err := routes.ListByZone(ctx, "Z1")
	if err != nil {
		t.Fatalf("list by zone: %v", err)
	}
	if len(inZone) != 2 || inZone[0].ID != "R2" || inZone[1].ID != "R1" {
		t.Fatalf("routes in zone = %+v, want R2 then R1 in storage order", inZone)
	}
}

func TestCollectionLogFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormCollectionLogRepository(newTestDB(t))

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	worker := "W1"
	logs := []*domain.CollectionLog{
		{ID: "L1", ZoneID: "Z1", VehicleID: "V1", WorkerID: &worker, StartTime: day.Add(8 * time.Hour), WeightKg: decimal.RequireFromString("120.50")},
		{ID: "L2", ZoneID: "Z1", VehicleID: "V2", StartTime: day.Add(32 * time.Hour), WeightKg: decimal.NewFromInt(80)},
		{ID: "L3", ZoneID: "Z2", VehicleID: "V1", StartTime: day.Add(-2 * time.Hour), WeightKg: decimal.NewFromInt(10)},
	}
	for _, l := range logs {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("create %s: %v", l.ID, err)
		}
	}

	got, err := repo.Find(ctx, ports.LogFilter{ZoneID: "Z1", From: day, To: day.Add(24 * time.Hour)})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].ID != "L1" {
		t.Fatalf("found %+v, want only L1", got)
	}
	if !got[0].WeightKg.Equal(decimal.RequireFromString("120.5")) {
		t.Fatalf("weight = %s, want 120.5", got[0].WeightKg)
	}
	if got[0].WorkerID == nil || *got[0].WorkerID != "W1" {
		t.Fatalf("worker id = %v, want W1", got[0].WorkerID)
	}
	if got[0].RouteID != nil {
		t.Fatalf("route id = %v, want nil", got[0].RouteID)
	}

	byVehicle, err := repo.Find(ctx, ports.LogFilter{VehicleID: "V1"})
	if err != nil {
		t.Fatalf("find by vehicle: %v", err)
	}
	if len(byVehicle) != 2 || byVehicle[0].ID != "L3" || byVehicle[1].ID != "L1" {
		t.Fatalf("by vehicle = %+v, want L3 then L1", byVehicle)
	}
}

func TestUserRepositoryEmailAndTheme(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDB(t))

	u := &domain.User{ID: "U1", Name: "Ada Admin", Email: "ada@wastewise.test", Role: domain.RoleAdmin, PasswordHash: "x", Theme: domain.ThemeLight}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "  ADA@wastewise.test ")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != "U1" {
		t.Fatalf("id = %q, want U1", got.ID)
	}

	if err := repo.UpdateTheme(ctx, "U1", domain.ThemeDark); err != nil {
		t.Fatalf("update theme: %v", err)
	}
	got, err = repo.GetByID(ctx, "U1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Theme != domain.ThemeDark {
		t.Fatalf("theme = %q, want dark", got.Theme)
	}

	if err := repo.UpdateTheme(ctx, "nobody", domain.ThemeDark); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("update missing err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByEmail(ctx, "missing@wastewise.test"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("missing email err = %v, want ErrNotFound", err)
	}
}

func TestVehicleRegistrationIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewGormVehicleRepository(newTestDB(t))

	v := &domain.Vehicle{ID: "V1", RegistrationNumber: "WW-100", Type: "compactor", CapacityKg: decimal.NewFromInt(8000), Status: domain.VehicleAvailable}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := &domain.Vehicle{ID: "V2", RegistrationNumber: "WW-100", Status: domain.VehicleAvailable}
	if err := repo.Create(ctx, dup); !errors.Is(err, ports.ErrDuplicate) {
		t.Fatalf("duplicate registration err = %v, want ErrDuplicate", err)
	}
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `{
	  "users": [{"id": "U1", "name": "Admin User", "email": "Admin@WasteWise.test", "password": "changeme"}],
	  "workers": [{"id": "W1", "name": "Sam", "status": "available"}],
	  "zones": [{"id": "Z1", "name": "North"}],
	  "routes": [{"id": "R1", "zoneId": "Z1", "name": "North loop", "estimatedTime": "45 minutes"}],
	  "vehicles": [{"id": "V1", "registrationNumber": "WW-1", "type": "truck", "capacityKg": 5000, "status": "in_use"}],
	  "logs": [{"id": "L1", "zoneId": "Z1", "vehicleId": "V1", "startTime": "2026-03-02T08:00:00Z", "weightKg": 12.5}],
	  "assignments": [{"id": "A1", "routeId": "R1", "workerId": "W1", "vehicleId": "V1", "scheduledDate": "2026-03-03T00:00:00Z", "status": "scheduled"}]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	counts, err := SeedFromJSON(ctx, client, path)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if counts.Logs != 1 || counts.Users != 1 || counts.Assignments != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}

	// Seeding twice upserts rather than failing.
	if _, err := SeedFromJSON(ctx, client, path); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	repos := New(client.DB())
	u, err := repos.Users.GetByEmail(ctx, "admin@wastewise.test")
	if err != nil {
		t.Fatalf("get seeded user: %v", err)
	}
	if u.Theme != domain.ThemeLight || u.Role != domain.RoleAdmin {
		t.Fatalf("seeded user defaults = %+v", u)
	}
	if u.PasswordHash == "changeme" || !strings.HasPrefix(u.PasswordHash, "$argon2id$") {
		t.Fatal("seeded password should be hashed")
	}
}

func TestSeedRejectsInvalidStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`{"workers": [{"id": "W1", "name": "Sam", "status": "sleeping"}]}`), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := SeedFromJSON(context.Background(), newTestClient(t), path); err == nil {
		t.Fatal("expected invalid status to fail seeding")
	}
}

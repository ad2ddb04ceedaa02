package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wastewise-admin-service/internal/adapters/cache"
	"wastewise-admin-service/internal/adapters/report"
	"wastewise-admin-service/internal/adapters/repositories"
	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/platform/metrics"
	"wastewise-admin-service/internal/platform/migrate"
	redisclient "wastewise-admin-service/internal/platform/redis"
	"wastewise-admin-service/internal/platform/security"
	"wastewise-admin-service/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@wastewise.test"
	adminPassword = "s3cret-pass"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	client, err := db.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, DSN: "file:" + name + "?mode=memory&cache=shared"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	sqlDB, err := client.SQL()
	require.NoError(t, err)
	require.NoError(t, migrate.Run(ctx, sqlDB, client.Dialect(), nil, "up"))

	repos := repositories.New(client.DB())
	hash, err := security.HashPasswordWith(adminPassword, security.ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32})
	require.NoError(t, err)
	require.NoError(t, repos.Users.Create(ctx, &domain.User{
		ID: "U1", Name: "Efua Boateng", Email: adminEmail, Role: domain.RoleAdmin, PasswordHash: hash, Theme: domain.ThemeLight,
	}))

	mr := miniredis.RunT(t)
	raw := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = raw.Close() })
	rc := redisclient.Wrap(raw)

	sessions, err := cache.NewRedisSessionStore(rc, time.Hour)
	require.NoError(t, err)
	consoles := cache.NewRedisConsoleStore(rc, time.Hour)

	jwtCfg := config.JWTConfig{Secret: "test-secret", Issuer: "wastewise", ExpirationMinutes: 15, SessionTTLMinutes: 60}
	pickup := services.NewPickupService(repos, services.PickupOptions{Cache: cache.NewRedisSummaryCache(rc), CacheTTL: time.Minute})
	records := services.NewRecordService(repos, pickup, nil)
	authSvc := services.NewAuthService(repos.Users, sessions, consoles, jwtCfg, nil)

	reg := prometheus.NewRegistry()
	h := NewRouter(Deps{
		Auth:           authSvc,
		Themes:         services.NewThemeService(repos.Users),
		Records:        records,
		Pickup:         pickup,
		Reports:        services.NewReportService(pickup),
		Console:        services.NewConsoleService(consoles, pickup, records, nil),
		Estimator:      services.NewRouteEstimator(records, nil, nil),
		Workbook:       report.NewXLSXWriter(),
		Health:         nil,
		Gatherer:       reg,
		HTTPMetrics:    metrics.NewHTTPMetrics(reg),
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return &testServer{t: t, handler: h}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) login() {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": adminEmail, "password": adminPassword})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	var res struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			Initials string `json:"initials"`
		} `json:"user"`
	}
	decode(s.t, rec, &res)
	require.NotEmpty(s.t, res.AccessToken)
	assert.Equal(s.t, "EB", res.User.Initials)
	s.token = res.AccessToken
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = s.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wastewise_http_requests_total")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/workers", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	s.token = "garbage"
	rec = s.do(http.MethodGet, "/api/v1/workers", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": adminEmail, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecordLifecycleAndPanels(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/v1/workers", map[string]any{"name": "Yaw", "email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "must be a valid email", env.Error.Details["email"])

	rec = s.do(http.MethodPost, "/api/v1/zones", map[string]any{"id": "Z1", "name": "North"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(http.MethodPost, "/api/v1/zones", map[string]any{"id": "Z1", "name": "Again"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	for _, rt := range []map[string]any{
		{"id": "R1", "zoneId": "Z1", "name": "Market loop", "estimatedTime": "30 minutes"},
		{"id": "R2", "zoneId": "Z9", "name": "Orphan", "estimatedTime": "1 hour"},
	} {
		rec = s.do(http.MethodPost, "/api/v1/routes", rt)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	var zones struct {
		TotalZones       int `json:"totalZones"`
		ZonesWithRoutes  int `json:"zonesWithRoutes"`
		UnassignedRoutes int `json:"unassignedRoutes"`
	}
	rec = s.do(http.MethodGet, "/api/v1/dashboard/zones", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &zones)
	assert.Equal(t, 1, zones.TotalZones)
	assert.Equal(t, 2, zones.ZonesWithRoutes)
	assert.Equal(t, 1, zones.UnassignedRoutes)

	var routes struct {
		AverageEstimatedTime string `json:"averageEstimatedTime"`
	}
	rec = s.do(http.MethodGet, "/api/v1/dashboard/routes", nil)
	decode(t, rec, &routes)
	assert.Equal(t, "45 minutes", routes.AverageEstimatedTime)

	var zoneRoutes []map[string]any
	rec = s.do(http.MethodGet, "/api/v1/zones/Z1/routes", nil)
	decode(t, rec, &zoneRoutes)
	assert.Len(t, zoneRoutes, 1)

	rec = s.do(http.MethodDelete, "/api/v1/routes/R2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/routes/R2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReports(t *testing.T) {
	s := newTestServer(t)
	s.login()

	rec := s.do(http.MethodPost, "/api/v1/reports", map[string]any{"type": "zone"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "please select all filters", env.Error.Message)
	assert.Equal(t, []any{"targetId", "dateRange"}, env.Error.Details["missing"])

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/zones", map[string]any{"id": "Z1", "name": "North"}).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/vehicles", map[string]any{"id": "V1", "registrationNumber": "gt-1", "capacityKg": 5000}).Code)
	rec = s.do(http.MethodPost, "/api/v1/logs", map[string]any{
		"zoneId": "Z1", "vehicleId": "V1", "startTime": "2026-03-02T08:00:00Z", "weightKg": "120.5",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	filter := map[string]any{"type": "zone", "targetId": "Z1", "from": "2026-03-01", "to": "2026-03-03"}
	var got struct {
		TargetName    string `json:"targetName"`
		Collections   int    `json:"collections"`
		TotalWeightKg string `json:"totalWeightKg"`
		Daily         []any  `json:"daily"`
	}
	rec = s.do(http.MethodPost, "/api/v1/reports", filter)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &got)
	assert.Equal(t, "North", got.TargetName)
	assert.Equal(t, 1, got.Collections)
	assert.Equal(t, "120.5", got.TotalWeightKg)
	assert.Len(t, got.Daily, 3)

	rec = s.do(http.MethodPost, "/api/v1/reports?format=xlsx", filter)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.NewXLSXWriter().ContentType(), rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "wastewise-zone-Z1-20260301-20260303.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")), "xlsx is a zip archive")
}

func TestConsoleFlowAndLogout(t *testing.T) {
	s := newTestServer(t)
	s.login()

	var view struct {
		State struct {
			View              string  `json:"view"`
			SelectedZoneID    *string `json:"selectedZoneId"`
			MobileSidebarOpen bool    `json:"mobileSidebarOpen"`
		} `json:"state"`
		NavItems []any `json:"navItems"`
		Panel    struct {
			Kind string `json:"kind"`
		} `json:"panel"`
	}

	rec := s.do(http.MethodGet, "/api/v1/console", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &view)
	assert.Equal(t, "adminDashboard", view.State.View)
	assert.Equal(t, "home", view.Panel.Kind)
	assert.Len(t, view.NavItems, 6)

	rec = s.do(http.MethodPost, "/api/v1/console/open", map[string]any{"action": "update", "entity": "zone", "id": "Z404"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &view)
	assert.Equal(t, "updateZone", view.State.View)
	assert.Equal(t, "form", view.Panel.Kind)

	s.do(http.MethodPost, "/api/v1/console/sidebar", map[string]any{"sidebar": "mobile"})
	rec = s.do(http.MethodPost, "/api/v1/console/navigate", map[string]any{"view": "vehicleManagement"})
	decode(t, rec, &view)
	assert.Equal(t, "vehicleManagement", view.State.View)
	assert.Nil(t, view.State.SelectedZoneID)
	assert.False(t, view.State.MobileSidebarOpen)
	assert.Equal(t, "vehicles", view.Panel.Kind)

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestThemeToggle(t *testing.T) {
	s := newTestServer(t)
	s.login()

	var theme struct {
		Theme string `json:"theme"`
	}
	decode(t, s.do(http.MethodPost, "/api/v1/theme/toggle", nil), &theme)
	assert.Equal(t, "dark", theme.Theme)
	decode(t, s.do(http.MethodGet, "/api/v1/theme", nil), &theme)
	assert.Equal(t, "dark", theme.Theme)
}

func TestEstimateWithoutProvider(t *testing.T) {
	s := newTestServer(t)
	s.login()

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/routes", map[string]any{
		"id": "R1", "zoneId": "Z1", "name": "Loop", "pathDetails": "Depot -> Market -> School",
	}).Code)

	rec := s.do(http.MethodPost, "/api/v1/routes/R1/estimate", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "DEPENDENCY_ERROR", env.Error.Code)
}

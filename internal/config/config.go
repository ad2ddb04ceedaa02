package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "WASTEWISE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	ORS   ORSConfig
	Stats StatsConfig
	Seed  SeedConfig
	CORS  CORSConfig
}

// Load reads the process environment into a Config and validates cross-field rules.
// Callers are expected to have run godotenv.Load beforehand.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.DB.Driver) {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("db dsn is required")
	}
	if c.JWT.AccessTTL() >= c.JWT.SessionTTL() {
		return fmt.Errorf("session ttl (%s) must exceed access token ttl (%s)", c.JWT.SessionTTL(), c.JWT.AccessTTL())
	}
	if c.Stats.RecentLogLimit <= 0 {
		return fmt.Errorf("recent log limit must be positive")
	}
	return nil
}

type AppConfig struct {
	Env       string `envconfig:"WASTEWISE_APP_ENV" default:"dev"`
	Port      string `envconfig:"WASTEWISE_APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"WASTEWISE_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"WASTEWISE_LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver      string `envconfig:"WASTEWISE_DB_DRIVER" default:"sqlite"`
	DSN         string `envconfig:"WASTEWISE_DB_DSN" default:"data/wastewise.db"`
	AutoMigrate bool   `envconfig:"WASTEWISE_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"WASTEWISE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"WASTEWISE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WASTEWISE_DB_CONN_MAX_LIFETIME" default:"30m"`
}

func (d DBConfig) IsSQLite() bool {
	return strings.EqualFold(d.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"WASTEWISE_REDIS_URL"`
	Address      string        `envconfig:"WASTEWISE_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"WASTEWISE_REDIS_PASSWORD"`
	DB           int           `envconfig:"WASTEWISE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WASTEWISE_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"WASTEWISE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WASTEWISE_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WASTEWISE_REDIS_WRITE_TIMEOUT" default:"3s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"WASTEWISE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"WASTEWISE_JWT_ISSUER" default:"wastewise"`
	ExpirationMinutes int    `envconfig:"WASTEWISE_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"WASTEWISE_SESSION_TTL_MINUTES" default:"720"`
}

// AccessTTL returns the lifetime of a minted access token.
func (j JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// SessionTTL returns how long a login session stays valid in the session store.
func (j JWTConfig) SessionTTL() time.Duration {
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type ORSConfig struct {
	APIKey  string `envconfig:"WASTEWISE_ORS_API_KEY"`
	BaseURL string `envconfig:"WASTEWISE_ORS_BASE_URL" default:"https://api.openrouteservice.org"`
	Profile string `envconfig:"WASTEWISE_ORS_PROFILE" default:"driving-hgv"`
	Country string `envconfig:"WASTEWISE_ORS_COUNTRY" default:"US"`

	GeocodeCacheTTL  time.Duration `envconfig:"WASTEWISE_ORS_GEOCODE_CACHE_TTL" default:"720h"`
	DistanceCacheTTL time.Duration `envconfig:"WASTEWISE_ORS_DISTANCE_CACHE_TTL" default:"168h"`
}

func (o ORSConfig) Enabled() bool {
	return strings.TrimSpace(o.APIKey) != ""
}

type StatsConfig struct {
	SummaryCacheTTL time.Duration `envconfig:"WASTEWISE_STATS_SUMMARY_CACHE_TTL" default:"5m"`
	RecentLogLimit  int           `envconfig:"WASTEWISE_STATS_RECENT_LOG_LIMIT" default:"10"`
}

type SeedConfig struct {
	Path string `envconfig:"WASTEWISE_SEED_PATH" default:"data/seeds/wastewise.json"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"WASTEWISE_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

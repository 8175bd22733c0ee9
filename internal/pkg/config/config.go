package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, policies), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Ledger    LedgerConfig
	Sweeper   SweeperConfig
	Migration MigrationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// DB credentials are only checked when LEDGER_STORAGE=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type LedgerConfig struct {
	// memory | postgres
	Storage string `envconfig:"LEDGER_STORAGE" default:"postgres"`
	// minimum | exact
	PricePolicy string `envconfig:"LEDGER_PRICE_POLICY" default:"minimum"`
	// absolute floor for any attached amount, in the smallest currency unit
	MinPrice         string `envconfig:"LEDGER_MIN_PRICE" default:"1"`
	SettlementFeeBPS int64  `envconfig:"LEDGER_SETTLEMENT_FEE_BPS" default:"0"`
	PlatformAccount  string `envconfig:"LEDGER_PLATFORM_ACCOUNT" default:"adslot.platform"`
	RequireUnitOwner bool   `envconfig:"LEDGER_REQUIRE_UNIT_OWNER" default:"false"`
}

type SweeperConfig struct {
	Enabled   bool   `envconfig:"SWEEPER_ENABLED" default:"false"`
	Schedule  string `envconfig:"SWEEPER_SCHEDULE" default:"@every 1m"`
	BatchSize int    `envconfig:"SWEEPER_BATCH_SIZE" default:"100"`
}

type MigrationConfig struct {
	Enabled  bool   `envconfig:"MIGRATION_ENABLED" default:"true"`
	UseAtlas bool   `envconfig:"MIGRATION_USE_ATLAS" default:"false"`
	AtlasBin string `envconfig:"MIGRATION_ATLAS_BIN" default:"atlas"`
	Dir      string `envconfig:"MIGRATION_DIR" default:"migrations"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.User == "" || c.Password == "" || c.DBName == "" {
		return fmt.Errorf("DB_USER, DB_PASSWORD and DB_NAME are required for postgres storage")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Ledger: LedgerConfig{
			Storage:         "memory",
			PricePolicy:     "minimum",
			MinPrice:        "1",
			PlatformAccount: "adslot.platform",
		},
		Sweeper: SweeperConfig{
			Schedule:  "@every 1m",
			BatchSize: 100,
		},
		Migration: MigrationConfig{
			Enabled:  true,
			AtlasBin: "atlas",
			Dir:      "migrations",
		},
	}
}

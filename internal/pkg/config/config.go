package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timeouts, retry budgets)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Commerce CommerceConfig
	Dedupe   DedupeConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

// CommerceConfig points at the external commerce platform that issues
// discount rules and redemption codes.
type CommerceConfig struct {
	BaseURL        string        `envconfig:"COMMERCE_BASE_URL" required:"true"`
	AccessToken    string        `envconfig:"COMMERCE_ACCESS_TOKEN" required:"true"`
	RequestTimeout time.Duration `envconfig:"COMMERCE_REQUEST_TIMEOUT" default:"15s"`
	MaxAttempts    int           `envconfig:"COMMERCE_CODE_MAX_ATTEMPTS" default:"3"`
	RetryBaseDelay time.Duration `envconfig:"COMMERCE_RETRY_BASE_DELAY" default:"2s"`
	SettleDelay    time.Duration `envconfig:"COMMERCE_SETTLE_DELAY" default:"500ms"`
}

// DedupeConfig controls the duplicate-request suppressor windows.
type DedupeConfig struct {
	Backend        string        `envconfig:"DEDUPE_BACKEND" default:"memory"` // memory | redis
	DebounceWindow time.Duration `envconfig:"DEDUPE_DEBOUNCE_WINDOW" default:"2s"`
	DebounceTTL    time.Duration `envconfig:"DEDUPE_DEBOUNCE_TTL" default:"10s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Commerce: CommerceConfig{
			BaseURL:        "http://localhost:9999",
			AccessToken:    "test-token",
			RequestTimeout: 2 * time.Second,
			MaxAttempts:    3,
			RetryBaseDelay: time.Millisecond,
			SettleDelay:    0,
		},
		Dedupe: DedupeConfig{
			Backend:        "memory",
			DebounceWindow: 2 * time.Second,
			DebounceTTL:    10 * time.Second,
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}

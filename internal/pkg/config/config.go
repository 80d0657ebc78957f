package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend credentials, etc.)
// - default: Values common across all environments (timezone, timeout, code format, etc.)
// Backend credentials are only enforced for the backend selected by STORE_BACKEND.
// -----------------------------------------------------------------------------

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	DB     DBConfig
	Redis  RedisConfig
	Promo  PromoConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" required:"true"`
	StaticDir string `envconfig:"STATIC_DIR"`
}

type StoreConfig struct {
	Backend string        `envconfig:"STORE_BACKEND" default:"postgres"`
	Timeout time.Duration `envconfig:"STORE_TIMEOUT" default:"3s"`
}

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

type RedisConfig struct {
	Addr       string `envconfig:"REDIS_ADDR"`
	Password   string `envconfig:"REDIS_PASSWORD"`
	DB         int    `envconfig:"REDIS_DB" default:"0"`
	Collection string `envconfig:"REDIS_COLLECTION" default:"promo_codes"`
}

type PromoConfig struct {
	Prefix        string `envconfig:"PROMO_PREFIX" default:"PROMO"`
	Alphabet      string `envconfig:"PROMO_ALPHABET" default:"ABCDEFGHJKLMNPQRSTUVWXYZ23456789"`
	MaxAttempts   int    `envconfig:"PROMO_MAX_ATTEMPTS" default:"10"`
	DefaultUsedBy string `envconfig:"PROMO_DEFAULT_USED_BY" default:"Sales Representative"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Validate checks the cross-field rules envconfig tags cannot express.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendPostgres:
		var missing []string
		if c.DB.User == "" {
			missing = append(missing, "DB_USER")
		}
		if c.DB.Password == "" {
			missing = append(missing, "DB_PASSWORD")
		}
		if c.DB.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
		if len(missing) > 0 {
			return fmt.Errorf("postgres backend requires %s", strings.Join(missing, ", "))
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis backend requires REDIS_ADDR")
		}
		if c.Redis.Collection == "" {
			return fmt.Errorf("redis backend requires a non-empty REDIS_COLLECTION")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want %q or %q)", c.Store.Backend, BackendPostgres, BackendRedis)
	}

	if c.Store.Timeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive, got %s", c.Store.Timeout)
	}
	if c.Promo.MaxAttempts < 1 {
		return fmt.Errorf("PROMO_MAX_ATTEMPTS must be at least 1, got %d", c.Promo.MaxAttempts)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend: BackendPostgres,
			Timeout: 3 * time.Second,
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
		Redis: RedisConfig{
			Addr:       "localhost:16379",
			Collection: "promo_codes",
		},
		Promo: PromoConfig{
			Prefix:        "PROMO",
			Alphabet:      "ABCDEFGHJKLMNPQRSTUVWXYZ23456789",
			MaxAttempts:   10,
			DefaultUsedBy: "Sales Representative",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}

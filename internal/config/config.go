package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DatabaseURL     string        `env:"DATABASE_URL" envDefault:"host=localhost user=postgres password=postgres dbname=nc_games port=5432 sslmode=disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// EndpointsFile overrides the embedded endpoint documentation when set.
	EndpointsFile string `env:"ENDPOINTS_FILE"`

	// CategoryCacheTTL of zero disables the category cache.
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"1m"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads the given .env files (if present) and parses the environment.
// A missing .env file is reported through envLoaded=false, not as an error.
func Load(files ...string) (cfg *Config, envLoaded bool, err error) {
	envLoaded = godotenv.Load(files...) == nil

	cfg = &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, envLoaded, fmt.Errorf("parse env: %w", err)
	}
	return cfg, envLoaded, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Logging     LoggingConfig
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

type ServerConfig struct {
	Host           string   `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port           int      `env:"PORT" envDefault:"8080"`
	GRPCHealthPort int      `env:"GRPC_HEALTH_PORT" envDefault:"50051"`
	StaticDir      string   `env:"STATIC_DIR"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// GRPCHealthAddr is empty when the health server is disabled (port 0).
func (s ServerConfig) GRPCHealthAddr() string {
	if s.GRPCHealthPort == 0 {
		return ""
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(s.GRPCHealthPort))
}

type DatabaseConfig struct {
	Driver   string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	URL      string `env:"DATABASE_URL" envDefault:"file:events.db"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET,required,notEmpty"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	CookieName   string        `env:"SESSION_COOKIE" envDefault:"session"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads .env when present and then the process environment, which wins.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE must not be empty")
	}
	origins := c.Server.AllowedOrigins[:0]
	for _, o := range c.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.Server.AllowedOrigins = origins
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

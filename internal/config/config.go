// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers understood by the database package. "memory" selects
// the in-memory repositories instead of GORM.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Session storage backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Database struct {
	Driver string
	DSN    string
}

type Session struct {
	Store        string
	TTL          time.Duration
	CookieSecure bool
	RedisURL     string
}

type Auth struct {
	JWTSecret   string
	TokenTTL    time.Duration
	EmailDomain string
}

type Log struct {
	Level  string
	Pretty bool
}

// Config is the full application configuration.
type Config struct {
	AppPort     string
	Database    Database
	Session     Session
	Auth        Auth
	RabbitMQURL string
	Log         Log
}

// Load reads configuration. Values from a .env file in the working
// directory are applied first; real environment variables win.
func Load() (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds a Config from v after applying defaults and enabling
// environment lookup.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EMAIL_DOMAIN", "@bitwardha.ac.in")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", true)
	v.AutomaticEnv()

	cfg := &Config{
		AppPort: v.GetString("APP_PORT"),
		Database: Database{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Session: Session{
			Store:        strings.ToLower(v.GetString("SESSION_STORE")),
			TTL:          v.GetDuration("SESSION_TTL"),
			CookieSecure: v.GetBool("COOKIE_SECURE"),
			RedisURL:     v.GetString("REDIS_URL"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET"),
			TokenTTL:    v.GetDuration("TOKEN_TTL"),
			EmailDomain: v.GetString("EMAIL_DOMAIN"),
		},
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres, DriverMySQL:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	if !strings.HasPrefix(c.Auth.EmailDomain, "@") {
		return fmt.Errorf("EMAIL_DOMAIN must start with @, got %q", c.Auth.EmailDomain)
	}
	return nil
}

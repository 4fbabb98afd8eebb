package config_test

import (
	"testing"
	"time"

	"vegfeedback/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
	assert.Equal(t, config.SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "@bitwardha.ac.in", cfg.Auth.EmailDomain)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestFromViper_Environment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file:test.db")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("EMAIL_DOMAIN", "@example.edu")

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "@example.edu", cfg.Auth.EmailDomain)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"missing dsn", map[string]string{"DB_DRIVER": "postgres"}},
		{"unknown session store", map[string]string{"SESSION_STORE": "file"}},
		{"bad email domain", map[string]string{"EMAIL_DOMAIN": "bitwardha.ac.in"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.FromViper(viper.New())
			assert.Error(t, err)
		})
	}
}

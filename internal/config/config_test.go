package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_ECHO", "true")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.Echo)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_DRIVER", "DATABASE_URL", "DB_ECHO", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, EnvProduction, cfg.Env)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Empty(t, cfg.Database.DSN)
	assert.False(t, cfg.Database.Echo)
	assert.Equal(t, "8080", cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{
			name:   "valid development config",
			mutate: func(c *AppConfig) { c.Env = EnvDevelopment; c.Debug = true },
		},
		{
			name:   "valid production config with secret",
			mutate: func(c *AppConfig) { c.SecretKey = "s3cret" },
		},
		{
			name:   "production without secret key is tolerated",
			mutate: func(c *AppConfig) { c.SecretKey = "" },
		},
		{
			name:    "unknown environment",
			mutate:  func(c *AppConfig) { c.Env = "staging" },
			wantErr: "validation failed",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *AppConfig) { c.SecretKey = "s"; c.Database.Driver = "oracle" },
			wantErr: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &AppConfig{
				Env:  EnvProduction,
				Port: "8080",
				Database: DatabaseConfig{
					Driver: DriverSQLite,
				},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr))
		})
	}
}

func TestZeroConfigStartup(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "SECRET_KEY", "PORT", "DATABASE_URL",
		"DB_DRIVER", "DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	// The defaults alone must form a startable configuration.
	cfg := Load()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Empty(t, cfg.SecretKey)
}

func TestLocalSQLitePath(t *testing.T) {
	p := LocalSQLitePath()
	assert.Equal(t, "local.db", filepath.Base(p))
	assert.True(t, filepath.IsAbs(p))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

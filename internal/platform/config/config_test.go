package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ADMIN_EMAILS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "household-ledger", cfg.JWTIssuer)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.AdminEmails)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("ADMIN_EMAILS", " root@example.com, ops@example.com ,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://ledger.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"root@example.com", "ops@example.com"}, cfg.AdminEmails)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestLoadConfigInvalidExpiryFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiryDuration)
}

func TestValidate(t *testing.T) {
	valid := Config{DBDriver: DriverSQLite, SQLitePath: "x.sqlite", JWTSecret: "s", MaxAvatarBytes: 1}
	require.NoError(t, valid.Validate())

	postgresNoURL := valid
	postgresNoURL.DBDriver = DriverPostgres
	assert.ErrorContains(t, postgresNoURL.Validate(), "PGSQL_URL")

	unknown := valid
	unknown.DBDriver = "mysql"
	assert.ErrorContains(t, unknown.Validate(), "unsupported DB_DRIVER")

	prodDefaultSecret := valid
	prodDefaultSecret.IsProduction = true
	prodDefaultSecret.JWTSecret = defaultJWTSecret
	assert.ErrorContains(t, prodDefaultSecret.Validate(), "production")
}

package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvSlice_TrimsAndDropsBlanks(t *testing.T) {
	t.Setenv("SYSTEM_BUSINESS", " acme , , acme-air,")

	got := getEnvSlice("SYSTEM_BUSINESS")

	assert.Equal(t, []string{"acme", "acme-air"}, got)
}

func TestGetEnvSlice_Unset(t *testing.T) {
	t.Setenv("SYSTEM_BUSINESS", "")

	assert.Empty(t, getEnvSlice("SYSTEM_BUSINESS"))
}

func TestLoad_ReadsReportSection(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("SYSTEM_BUSINESS", "acme,acme-air")
	t.Setenv("REPORT_LOGO_URL", "https://cdn.example.com/logo.png")
	t.Setenv("REPORT_LOGO_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"acme", "acme-air"}, cfg.Report.SystemBusiness)
	assert.Equal(t, "https://cdn.example.com/logo.png", cfg.Report.LogoURL)
	assert.Equal(t, "3s", cfg.Report.LogoTimeout.String())
}

func TestLoad_RequiresSystemBusiness(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("SYSTEM_BUSINESS", "")

	_, err := Load()

	assert.ErrorContains(t, err, "SYSTEM_BUSINESS is required")
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "bogus"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadDatabase_URL(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "hris")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "backoffice")
	t.Setenv("DB_SSL_MODE", "require")

	db, err := LoadDatabase()
	require.NoError(t, err)

	assert.Equal(t, "postgres://hris:pw@db.internal:6543/backoffice?sslmode=require", db.URL())
}

func TestLoadDatabase_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")

	_, err := LoadDatabase()

	assert.ErrorContains(t, err, "invalid DB_PORT")
}

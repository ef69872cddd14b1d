package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxAssetSizeBytes)
	assert.Equal(t, int64(16<<20), cfg.Upload.MaxRequestSizeBytes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MAX_ASSET_SIZE_BYTES", "1024")
	t.Setenv("CORS_ORIGINS", "https://billing.example.com, https://admin.example.com")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddress())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int64(1024), cfg.Upload.MaxAssetSizeBytes)
	assert.Equal(t, []string{"https://billing.example.com", "https://admin.example.com"}, cfg.App.CORSOrigins)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

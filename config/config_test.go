package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 83.0, cfg.FX.FallbackRate)
	assert.Equal(t, "INR", cfg.FX.TargetCurrency)
	assert.Equal(t, 5*time.Second, cfg.Quote.Timeout)
	assert.Equal(t, "demo", cfg.Quote.APIKey)
	assert.Equal(t, ".NS", cfg.Market.DomesticSuffix)
	assert.Equal(t, "testuser@example.com", cfg.Auth.Email)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("QUOTE_API_KEY", "live-key")
	t.Setenv("FX_FALLBACK_RATE", "84.5")
	t.Setenv("API_PORT", "9090")
	t.Setenv("CATALOG_PATH", "/etc/investment-advisor/catalog.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "live-key", cfg.Quote.APIKey)
	assert.Equal(t, 84.5, cfg.FX.FallbackRate)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "/etc/investment-advisor/catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "https://www.alphavantage.co", cfg.Quote.BaseURL)
}

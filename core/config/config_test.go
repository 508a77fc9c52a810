package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dataview/core/config"
)

type listingConfig struct {
	PageSize int           `env:"LISTING_PAGE_SIZE" envDefault:"10"`
	Delay    time.Duration `env:"LISTING_SEARCH_DELAY" envDefault:"400ms"`
}

type endpointConfig struct {
	BaseURL string `env:"ENDPOINT_BASE_URL" envDefault:"https://dummyjson.com"`
}

type cachedConfig struct {
	Value string `env:"CACHED_CONFIG_VALUE" envDefault:"first"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var cfg listingConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, 10, cfg.PageSize)
		assert.Equal(t, 400*time.Millisecond, cfg.Delay)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("ENDPOINT_BASE_URL", "https://api.example.com")

		var cfg endpointConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	})

	t.Run("caches per type and ignores later env changes", func(t *testing.T) {
		t.Setenv("CACHED_CONFIG_VALUE", "loaded")

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "loaded", first.Value)

		t.Setenv("CACHED_CONFIG_VALUE", "changed")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("rejects nil target", func(t *testing.T) {
		var cfg *listingConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns without panic on valid config", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg listingConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("panics on nil target", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg *endpointConfig
			config.MustLoad(cfg)
		})
	})
}

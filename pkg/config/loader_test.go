package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/plankit/pkg/config"
)

type testConfig struct {
	Host  string `env:"TEST_CFG_HOST" envDefault:"localhost"`
	Port  int    `env:"TEST_CFG_PORT" envDefault:"8080"`
	Token string `env:"TEST_CFG_TOKEN"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CFG_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Empty(t, cfg.Token)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("TEST_CFG_HOST", "db.internal")
		t.Setenv("TEST_CFG_PORT", "27017")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 27017, cfg.Port)
	})

	t.Run("fails on a missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("fails on an unparseable value", func(t *testing.T) {
		t.Setenv("TEST_CFG_PORT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects a nil destination", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("loads a named dotenv file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "extra.env")
		require.NoError(t, os.WriteFile(file, []byte("TEST_CFG_TOKEN=from-file\n"), 0o600))

		t.Setenv("TEST_CFG_TOKEN", "from-env")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, file))
		assert.Equal(t, "from-file", cfg.Token, "named dotenv files override the environment")
	})

	t.Run("fails when a named dotenv file is missing", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingDotenv)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns the config on success", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("panics on failure", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "fixtures", cfg.FixturesDir)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("PSP_DATA_DIR", "")
	t.Setenv("PSP_FIXTURES_DIR", "")
	t.Setenv("PSP_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ReadsYAML(t *testing.T) {
	t.Setenv("PSP_DATA_DIR", "")
	t.Setenv("PSP_FIXTURES_DIR", "")
	t.Setenv("PSP_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "psp.yaml")
	contents := "fixtures_dir: my-fixtures\ndata_dir: my-data\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-fixtures", cfg.FixturesDir)
	assert.Equal(t, "my-data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fixtures_dir: [\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("environment wins over file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "psp.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data_dir: from-file\n"), 0644))
		t.Setenv("PSP_DATA_DIR", "from-env")
		t.Setenv("PSP_FIXTURES_DIR", "")
		t.Setenv("PSP_LOG_LEVEL", "")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.DataDir)
	})

	t.Run("empty variables change nothing", func(t *testing.T) {
		cfg := DefaultConfig()
		t.Setenv("PSP_DATA_DIR", "")
		t.Setenv("PSP_FIXTURES_DIR", "")
		t.Setenv("PSP_LOG_LEVEL", "")

		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overrides fixtures and log level", func(t *testing.T) {
		cfg := DefaultConfig()
		t.Setenv("PSP_FIXTURES_DIR", "elsewhere")
		t.Setenv("PSP_LOG_LEVEL", "warn")

		cfg.applyEnvOverrides()
		assert.Equal(t, "elsewhere", cfg.FixturesDir)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("PSP_DATA_DIR", "")
	t.Setenv("PSP_FIXTURES_DIR", "")
	t.Setenv("PSP_LOG_LEVEL", "")

	cfg := DefaultConfig()
	cfg.DataDir = "saved-data"

	path := filepath.Join(t.TempDir(), "nested", "psp.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ModeFile, cfg.Mode)
	assert.Equal(t, filepath.Join("data", "Orders"), cfg.OrdersDir)
	assert.Equal(t, filepath.Join("data", "Products.txt"), cfg.ProductsFile)
	assert.Equal(t, filepath.Join("data", "Taxes.txt"), cfg.TaxesFile)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/etc/flooring.yaml", `
mode: memory
data_dir: /srv/flooring
taxes_file: /srv/shared/Taxes.txt
log:
  level: debug
  format: json
`)

	cfg, err := Load(LoadOptions{Fs: fsys, ConfigFile: "/etc/flooring.yaml"})
	require.NoError(t, err)

	assert.Equal(t, ModeMemory, cfg.Mode)
	assert.Equal(t, "/srv/flooring", cfg.DataDir)
	assert.Equal(t, "/srv/flooring/Orders", cfg.OrdersDir)
	assert.Equal(t, "/srv/flooring/Products.txt", cfg.ProductsFile)
	assert.Equal(t, "/srv/shared/Taxes.txt", cfg.TaxesFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(LoadOptions{Fs: afero.NewMemMapFs(), ConfigFile: "/nope/flooring.yaml"})
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeConfig(t, fsys, "/etc/flooring.yaml", "data_dir: /from/file\n")
	t.Setenv("FLOORING_DATA_DIR", "/from/env")
	t.Setenv("FLOORING_LOG_LEVEL", "error")

	cfg, err := Load(LoadOptions{Fs: fsys, ConfigFile: "/etc/flooring.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.DataDir)
	assert.Equal(t, "/from/env/Orders", cfg.OrdersDir)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("FLOORING_MODE", "memory")

	cfg, err := Load(LoadOptions{
		Fs:        afero.NewMemMapFs(),
		Overrides: map[string]any{"mode": "FILE", "data_dir": "/flags"},
	})
	require.NoError(t, err)
	assert.Equal(t, ModeFile, cfg.Mode)
	assert.Equal(t, "/flags", cfg.DataDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"mode", func(c *Config) { c.Mode = "Prod" }, `invalid mode "Prod"`},
		{"data dir", func(c *Config) { c.DataDir = " " }, "data_dir cannot be empty"},
		{"level", func(c *Config) { c.Log.Level = "chatty" }, `invalid log.level "chatty"`},
		{"format", func(c *Config) { c.Log.Format = "xml" }, `invalid log.format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

// Package config loads flooring settings from defaults, an optional YAML
// file, FLOORING_* environment variables and command-line overrides, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/roach88/flooring/internal/logger"
)

// Storage modes.
const (
	// ModeFile keeps data on the OS filesystem under DataDir.
	ModeFile = "file"

	// ModeMemory keeps data in memory, seeded with sample records. Nothing
	// survives the process.
	ModeMemory = "memory"
)

// Config file lookup.
const (
	FileName  = "flooring"
	EnvPrefix = "FLOORING"
)

// Config holds application configuration.
type Config struct {
	Mode         string    `mapstructure:"mode"`
	DataDir      string    `mapstructure:"data_dir"`
	OrdersDir    string    `mapstructure:"orders_dir"`
	ProductsFile string    `mapstructure:"products_file"`
	TaxesFile    string    `mapstructure:"taxes_file"`
	Log          LogConfig `mapstructure:"log"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadOptions controls where Load reads from.
type LoadOptions struct {
	// ConfigFile is an explicit config path. When empty, flooring.yaml is
	// searched for in the working directory and $HOME/.config/flooring, and
	// a missing file is not an error.
	ConfigFile string

	// Fs is the filesystem config files are read from. Default: the OS.
	Fs afero.Fs

	// Overrides are keys set from the command line.
	Overrides map[string]any
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		Mode:    ModeFile,
		DataDir: "./data",
		Log: LogConfig{
			Level:  "warn",
			Format: logger.FormatConsole,
		},
	}
	cfg.resolvePaths()
	return cfg
}

// Load reads the configuration and validates it.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	def := Default()
	v.SetDefault("mode", def.Mode)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("orders_dir", "")
	v.SetDefault("products_file", "")
	v.SetDefault("taxes_file", "")
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolvePaths fills unset file locations from DataDir.
func (c *Config) resolvePaths() {
	if c.OrdersDir == "" {
		c.OrdersDir = filepath.Join(c.DataDir, "Orders")
	}
	if c.ProductsFile == "" {
		c.ProductsFile = filepath.Join(c.DataDir, "Products.txt")
	}
	if c.TaxesFile == "" {
		c.TaxesFile = filepath.Join(c.DataDir, "Taxes.txt")
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeFile, ModeMemory:
	default:
		return fmt.Errorf("invalid mode %q: want %q or %q", c.Mode, ModeFile, ModeMemory)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir cannot be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	return nil
}

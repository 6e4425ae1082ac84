package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/flooring/internal/config"
	"github.com/roach88/flooring/internal/engine"
	"github.com/roach88/flooring/internal/logger"
	"github.com/roach88/flooring/internal/seed"
	"github.com/roach88/flooring/internal/store"
)

// app is everything a command needs once configuration is resolved.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	fs       afero.Fs
	shards   *store.Shards
	products *store.ProductStore
	taxes    *store.TaxStore
	factory  *engine.Factory
}

// loadConfig resolves configuration, applying command-line overrides.
func (o *RootOptions) loadConfig() (config.Config, error) {
	overrides := map[string]any{}
	if o.DataDir != "" {
		overrides["data_dir"] = o.DataDir
	}
	if o.Mode != "" {
		overrides["mode"] = o.Mode
	}
	if o.Verbose {
		overrides["log.level"] = "debug"
	}
	return config.Load(config.LoadOptions{
		ConfigFile: o.ConfigFile,
		Fs:         o.Fs,
		Overrides:  overrides,
	})
}

// openFS returns the data filesystem for cfg. Memory mode gets a fresh
// filesystem seeded with the sample catalog.
func (o *RootOptions) openFS(cfg config.Config) (afero.Fs, error) {
	if cfg.Mode == config.ModeMemory {
		return seed.MemoryFS(cfg.ProductsFile, cfg.TaxesFile)
	}
	if o.Fs != nil {
		return o.Fs, nil
	}
	return afero.NewOsFs(), nil
}

// setup loads configuration, builds the logger and opens the data
// filesystem. Failures are reported through f.
func (o *RootOptions) setup(cmd *cobra.Command, f *OutputFormatter) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to build logger", err)
	}

	fsys, err := o.openFS(cfg)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to prepare storage", err)
	}

	log.Debug("configuration loaded",
		zap.String("mode", cfg.Mode),
		zap.String("orders_dir", cfg.OrdersDir),
		zap.String("products_file", cfg.ProductsFile),
		zap.String("taxes_file", cfg.TaxesFile),
	)
	return &app{cfg: cfg, log: log, fs: fsys}, nil
}

// open is setup plus the reference stores and the manager factory.
func (o *RootOptions) open(cmd *cobra.Command, f *OutputFormatter) (*app, error) {
	a, err := o.setup(cmd, f)
	if err != nil {
		return nil, err
	}

	a.products, err = store.OpenProducts(a.fs, a.cfg.ProductsFile, a.log)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to load products (run \"flooring init\" to create sample data)", err)
	}
	a.taxes, err = store.OpenTaxes(a.fs, a.cfg.TaxesFile, a.log)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to load taxes (run \"flooring init\" to create sample data)", err)
	}

	a.shards = store.NewShards(a.fs, a.cfg.OrdersDir, a.log)

	opts := []engine.Option{engine.WithLogger(a.log)}
	if o.Clock != nil {
		opts = append(opts, engine.WithClock(o.Clock))
	}
	if o.SessionIDs != nil {
		opts = append(opts, engine.WithSessionIDs(o.SessionIDs))
	}
	a.factory = engine.NewFactory(a.shards, a.products, a.taxes, opts...)
	return a, nil
}

// manager binds a Manager to date. In memory mode the date starts with the
// sample order.
func (a *app) manager(date string, f *OutputFormatter) (*engine.Manager, error) {
	if a.cfg.Mode == config.ModeMemory {
		if err := seed.SampleShard(a.shards, date); err != nil {
			return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to seed sample order", err)
		}
	}
	m, err := a.factory.Create(date)
	if err != nil {
		return nil, f.Fail(ExitCommandError, ErrCodeStorage, "failed to open orders", err)
	}
	f.SessionID = m.SessionID()
	f.VerboseLog("session %s bound to %s", m.SessionID(), date)
	return m, nil
}

// report prints a non-Success response and returns its ExitError. It
// returns nil for Success.
func report(f *OutputFormatter, resp engine.Response) error {
	switch resp.Result {
	case engine.Success:
		return nil
	case engine.Invalid:
		return f.Fail(ExitFailure, ErrCodeInvalidDate, resp.Message, nil)
	default:
		return f.Fail(ExitFailure, ErrCodeRuleFailed, resp.Message, nil)
	}
}

// storageFault reports an error returned by an engine operation.
func storageFault(f *OutputFormatter, err error) error {
	return f.Fail(ExitCommandError, ErrCodeStorage, "storage error", err)
}

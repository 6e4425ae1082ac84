package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/flooring/internal/config"
	"github.com/roach88/flooring/internal/seed"
)

// initResult is the JSON payload of the init command.
type initResult struct {
	DataDir   string   `json:"data_dir"`
	OrdersDir string   `json:"orders_dir"`
	Created   []string `json:"created"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create sample product and tax files",
		Long: `Create the data directory with sample Products.txt and Taxes.txt files.

Existing files are left untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	a, err := opts.setup(cmd, f)
	if err != nil {
		return err
	}
	if a.cfg.Mode == config.ModeMemory {
		return f.Fail(ExitCommandError, ErrCodeConfig, "init writes files; use --mode file", nil)
	}

	created, err := seed.WriteCatalog(a.fs, a.cfg.ProductsFile, a.cfg.TaxesFile, seed.Default())
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to write sample data", err)
	}
	if err := a.fs.MkdirAll(a.cfg.OrdersDir, 0o755); err != nil {
		return f.Fail(ExitCommandError, ErrCodeStorage, "failed to create orders directory", err)
	}

	res := initResult{DataDir: a.cfg.DataDir, OrdersDir: a.cfg.OrdersDir, Created: created}
	if res.Created == nil {
		res.Created = []string{}
	}
	return f.Success(res, func(w io.Writer) {
		if len(created) == 0 {
			fmt.Fprintf(w, "Sample data already present in %s.\n", a.cfg.DataDir)
			return
		}
		for _, path := range created {
			fmt.Fprintf(w, "Created %s\n", path)
		}
	})
}

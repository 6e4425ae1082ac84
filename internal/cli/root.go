package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/roach88/flooring/internal/engine"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	DataDir    string
	Mode       string // "file" | "memory"; empty defers to config

	// Fs overrides the filesystem used in file mode and for reading the
	// config file (for testing). If nil, the OS filesystem is used.
	Fs afero.Fs

	// Clock overrides the engine clock (for testing).
	Clock engine.Clock

	// SessionIDs overrides the session id generator (for testing).
	SessionIDs engine.SessionIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the flooring CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flooring",
		Short: "Flooring order book",
		Long: `Manage flooring orders stored as one file per order date.

Orders are priced from the product and tax reference files. Every command
that takes a date accepts MMDDYYYY or MM/DD/YYYY. Touching a date that is
not in the future deletes its order file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: flooring.yaml in . or $HOME/.config/flooring)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding Products.txt, Taxes.txt and Orders/")
	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", "", "storage mode (file|memory)")

	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewProductsCommand(opts))
	cmd.AddCommand(NewStatesCommand(opts))
	cmd.AddCommand(NewValidateDateCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

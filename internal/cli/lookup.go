package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/flooring/internal/engine"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <date>",
		Short: "List the orders of a date",
		Long: `List every order placed for a date.

A date that is not in the future has its order file deleted before the
lookup, so it always lists nothing.

Example:
  flooring lookup 07062031`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, cmd, args[0])
		},
	}
}

func runLookup(opts *RootOptions, cmd *cobra.Command, date string) error {
	f := opts.formatter(cmd)
	a, err := opts.open(cmd, f)
	if err != nil {
		return err
	}
	m, err := a.manager(date, f)
	if err != nil {
		return err
	}

	resp, err := m.LookupOrders(date)
	if err != nil {
		return storageFault(f, err)
	}
	if err := report(f, resp.Response); err != nil {
		return err
	}

	return f.Success(resp, func(w io.Writer) {
		writeLookup(w, resp)
	})
}

func writeLookup(w io.Writer, resp engine.LookupResponse) {
	if len(resp.Orders) == 0 {
		fmt.Fprintf(w, "No orders for %s.\n", resp.Date.Format(displayDate))
		return
	}
	for _, o := range resp.Orders {
		writeOrder(w, o, resp.Date)
	}
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date> <number>",
		Short: "Delete an order",
		Long: `Delete an order. Removing the last order of a date deletes its order file.

Example:
  flooring remove 07062031 1`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, cmd, args[0], args[1])
		},
	}
}

func runRemove(opts *RootOptions, cmd *cobra.Command, date, number string) error {
	f := opts.formatter(cmd)

	n, err := parseOrderNumber(f, number)
	if err != nil {
		return err
	}

	a, err := opts.open(cmd, f)
	if err != nil {
		return err
	}
	m, err := a.manager(date, f)
	if err != nil {
		return err
	}

	resp, err := m.RemoveOrder(date, n)
	if err != nil {
		return storageFault(f, err)
	}
	if err := report(f, resp.Response); err != nil {
		return err
	}

	return f.Success(resp, func(w io.Writer) {
		fmt.Fprintf(w, "Order #%d removed.\n", resp.OrderNumber)
	})
}

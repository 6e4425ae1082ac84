package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name    string
	State   string
	Product string
	Area    string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <date>",
		Short: "Place a new order",
		Long: `Place a new order for a future date.

The order is priced from the product and tax files and gets the next free
order number of its date.

Example:
  flooring add 07062031 --name "Acme, Inc." --state Ohio --product Wood --area 100`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "customer name (letters, digits, commas, periods and spaces)")
	cmd.Flags().StringVar(&opts.State, "state", "", "state name, as listed by \"flooring states\"")
	cmd.Flags().StringVar(&opts.Product, "product", "", "product type, as listed by \"flooring products\"")
	cmd.Flags().StringVar(&opts.Area, "area", "", "area in square feet (at least 100)")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("area")

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command, date string) error {
	f := opts.formatter(cmd)

	area, err := parseArea(f, opts.Area)
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

	resp, err := m.AddOrder(opts.Name, opts.State, opts.Product, area)
	if err != nil {
		return storageFault(f, err)
	}
	if err := report(f, resp.Response); err != nil {
		return err
	}

	return f.Success(resp, func(w io.Writer) {
		fmt.Fprintf(w, "Order #%d added.\n\n", resp.Order.OrderNumber)
		writeOrder(w, resp.Order, resp.Date)
	})
}

// parseArea parses a decimal area flag.
func parseArea(f *OutputFormatter, s string) (decimal.Decimal, error) {
	area, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, f.Fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid area %q", s), err)
	}
	return area, nil
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	*RootOptions
	Name    string
	State   string
	Product string
	Area    string
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <date> <number>",
		Short: "Change an existing order",
		Long: `Change the customer, state, product or area of an order.

Omitted flags keep the order's current values. Costs are recomputed from
the current product and tax files.

Example:
  flooring edit 07062031 1 --area 150`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "new customer name")
	cmd.Flags().StringVar(&opts.State, "state", "", "new state name")
	cmd.Flags().StringVar(&opts.Product, "product", "", "new product type")
	cmd.Flags().StringVar(&opts.Area, "area", "", "new area in square feet")

	return cmd
}

func runEdit(opts *EditOptions, cmd *cobra.Command, date, number string) error {
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

	current, _ := m.Orders().GetByNumber(n)
	name := current.CustomerName
	state := current.Tax.State
	product := current.Product.ProductType
	area := current.Area

	flags := cmd.Flags()
	if flags.Changed("name") {
		name = opts.Name
	}
	if flags.Changed("state") {
		state = opts.State
	}
	if flags.Changed("product") {
		product = opts.Product
	}
	if flags.Changed("area") {
		if area, err = parseArea(f, opts.Area); err != nil {
			return err
		}
	}

	resp, err := m.EditOrder(date, n, name, state, product, area)
	if err != nil {
		return storageFault(f, err)
	}
	if err := report(f, resp.Response); err != nil {
		return err
	}

	return f.Success(resp, func(w io.Writer) {
		fmt.Fprintf(w, "Order #%d updated.\n\n", resp.Order.OrderNumber)
		writeOrder(w, resp.Order, resp.Date)
	})
}

// parseOrderNumber parses an order number argument.
func parseOrderNumber(f *OutputFormatter, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, f.Fail(ExitCommandError, ErrCodeInvalidArg, fmt.Sprintf("invalid order number %q", s), err)
	}
	return n, nil
}

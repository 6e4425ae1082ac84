package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewProductsCommand creates the products command.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "products",
		Short:         "List the product types that can be ordered",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			a, err := rootOpts.open(cmd, f)
			if err != nil {
				return err
			}

			products := a.factory.Products()
			return f.Success(products, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "PRODUCT\tMATERIAL/SQ FT\tLABOR/SQ FT")
				for _, p := range products {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ProductType, currency(p.CostPerSquareFoot), currency(p.LaborCostPerSquareFoot))
				}
				tw.Flush()
			})
		},
	}
}

// NewStatesCommand creates the states command.
func NewStatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "states",
		Short:         "List the states orders can ship to",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			a, err := rootOpts.open(cmd, f)
			if err != nil {
				return err
			}

			taxes := a.factory.Taxes()
			return f.Success(taxes, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ABBR\tSTATE\tTAX RATE")
				for _, t := range taxes {
					fmt.Fprintf(tw, "%s\t%s\t%s%%\n", t.StateAbbreviation, t.State, t.TaxRate.String())
				}
				tw.Flush()
			})
		},
	}
}

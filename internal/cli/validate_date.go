package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewValidateDateCommand creates the validate-date command.
func NewValidateDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-date <date>",
		Short: "Check that a date can be parsed",
		Long: `Check that a date parses as MMDDYYYY or MM/DD/YYYY.

Like every dated command, this deletes the date's order file when the date
is not in the future.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			f := rootOpts.formatter(cmd)
			a, err := rootOpts.open(cmd, f)
			if err != nil {
				return err
			}
			m, err := a.manager(date, f)
			if err != nil {
				return err
			}

			resp, err := m.ValidateDate(date)
			if err != nil {
				return storageFault(f, err)
			}
			if err := report(f, resp); err != nil {
				return err
			}
			return f.Success(resp, func(w io.Writer) {
				fmt.Fprintf(w, "%s is a valid date.\n", resp.Date.Format(displayDate))
			})
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newCheckedInCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "checkedin",
		Short: "See who is checked in",
		Long: `Show everyone checked in to the hub on a date.

Examples:
  rchub checkedin
  rchub checkedin --date 2024-01-15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckedIn(date)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date to check (defaults to today, format: YYYY-MM-DD)")

	return cmd
}

func runCheckedIn(dateArg string) error {
	date, err := resolveDate(dateArg)
	if err != nil {
		return err
	}

	c, err := newAPIClient()
	if err != nil {
		return err
	}

	visits, err := c.Visits(date)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(visits)
	}

	printVisitList(date, visits)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Long:  "Fetches and prints the profile the configured token belongs to.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}

	me, err := c.CurrentUser()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(me)
	}

	fmt.Printf("%s (#%d)\n", me.Name, me.ID)
	return nil
}

// Package cli defines the cobra command tree for rchub.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mharmon/rchub/internal/api"
)

var flagFormat string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rchub",
		Short:         "Check in to the Recurse Center hub",
		Long:          "A tool for the Recurse Center hub check-in API. Check in for the day, remove a check-in, and see who's at the hub.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")

	root.AddCommand(
		newCheckinCmd(),
		newCheckedInCmd(),
		newWhoamiCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an API client, failing when no token is configured.
// Token resolution is an orchestrator concern; the client itself never
// sees an absent token.
func newAPIClient() (*api.Client, error) {
	token, err := requireToken()
	if err != nil {
		return nil, err
	}
	return api.New(getBaseURL(), token), nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

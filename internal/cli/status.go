package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mharmon/rchub/internal/api"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and auth status",
		Long:  "Tests the connection to the API and checks if the stored token is valid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	baseURL := getBaseURL()
	token := getToken()

	fmt.Printf("API:    %s\n", baseURL)

	if token == "" {
		fmt.Println("Token:  not configured")
		fmt.Println("\nRun 'rchub login' to authenticate.")
		return nil
	}

	prefix := token
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	fmt.Printf("Token:  %s…\n", prefix)

	me, err := api.New(baseURL, token).CurrentUser()
	switch {
	case err == nil:
		fmt.Printf("Status: ✓ authenticated as %s\n", me.Name)
	case api.StatusOf(err) == http.StatusUnauthorized:
		fmt.Println("Status: ✗ invalid token")
		fmt.Println("\nRun 'rchub login' to re-authenticate.")
	case api.IsKind(err, api.KindNetwork):
		fmt.Printf("Status: ✗ cannot reach API (%v)\n", err)
	default:
		fmt.Printf("Status: ✗ %v\n", err)
	}

	return nil
}

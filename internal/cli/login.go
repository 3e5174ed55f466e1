package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// tokenSettingsURL is where personal access tokens are generated.
const tokenSettingsURL = "https://www.recurse.com/settings/apps"

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a personal access token",
		Long:  "Opens the token settings page in a browser and stores the pasted token for later commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin()
		},
	}
}

func runLogin() error {
	fmt.Println("Opening browser to generate a personal access token...")
	fmt.Printf("If the browser doesn't open, visit: %s\n\n", tokenSettingsURL)

	if err := openBrowser(tokenSettingsURL); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
	}

	fmt.Print("Paste your token: ")
	reader := bufio.NewReader(os.Stdin)
	token, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	token = strings.TrimSpace(token)
	if err := validateToken(token); err != nil {
		return err
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Token = token
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("✓ Token saved. You're logged in!")
	return nil
}

// validateToken checks that the token is a single opaque string.
func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("no token provided")
	}
	if strings.ContainsAny(token, " \t") {
		return fmt.Errorf("invalid token: contains whitespace")
	}
	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	relayURL string
	secret   string
)

var rootCmd = &cobra.Command{
	Use:   "relayctl",
	Short: "Lark relay CLI",
	Long: `relayctl is the command-line companion for the Lark notification relay.

Send signed test webhooks, seed batches of fake issue events, check relay
health, and generate a starter configuration file.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&relayURL, "relay-url", "http://localhost:3000", "relay base URL")
	rootCmd.PersistentFlags().StringVar(&secret, "secret", "", "webhook signing secret (default: $LINEAR_WEBHOOK_SECRET)")
}

// signingSecret resolves the --secret flag with an environment fallback so
// scripts can keep the secret off the command line.
func signingSecret() string {
	if secret != "" {
		return secret
	}
	return os.Getenv("LINEAR_WEBHOOK_SECRET")
}

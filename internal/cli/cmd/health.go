package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/larkrelay/internal/cli/client"
	"github.com/telhawk-systems/larkrelay/pkg/output"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check relay health",
	Long:  "Probe the relay's health endpoint and report whether it is serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		relayClient := client.NewRelayClient(relayURL, "")
		if err := relayClient.Health(); err != nil {
			return fmt.Errorf("relay is not healthy: %w", err)
		}

		output.Success("Relay at %s is healthy", relayURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

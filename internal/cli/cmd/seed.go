package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/larkrelay/internal/seeder"
)

var (
	seedCfgFile  string
	seedCount    int
	seedInterval time.Duration
	seedDryRun   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the relay with generated events",
	Long: `Generate realistic issue-tracker webhook events and send them to the relay.

Configuration cascade (priority order):
  1. Command-line flags
  2. ./seeder.yaml (project directory)
  3. ~/.larkrelay/seeder.yaml (user directory)
  4. Built-in defaults

A slice of the generated events are comments and deletions, so a seeding
run exercises the relay's skip paths as well as its delivery path.

Examples:
  # Send 50 events with defaults
  relayctl seed

  # A slow drip of 500 events
  relayctl seed --count 500 --interval 200ms

  # Inspect what would be sent
  relayctl seed --count 3 --dry-run`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVar(&seedCfgFile, "config", "", "config file (default: ./seeder.yaml or ~/.larkrelay/seeder.yaml)")
	seedCmd.Flags().IntVarP(&seedCount, "count", "c", 0, "Number of events to generate")
	seedCmd.Flags().DurationVar(&seedInterval, "interval", 0, "Pause between events (e.g. 100ms)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print generated events instead of sending them")
}

func runSeed(cmd *cobra.Command, args []string) error {
	config, err := seeder.LoadConfig(seedCfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over config file values
	if cmd.Flags().Changed("relay-url") {
		config.RelayURL = relayURL
	}
	if cmd.Flags().Changed("secret") || config.Secret == "" {
		config.Secret = signingSecret()
	}
	if cmd.Flags().Changed("count") {
		config.Count = seedCount
	}
	if cmd.Flags().Changed("interval") {
		config.Interval = seedInterval
	}

	if seedDryRun {
		return seeder.NewRunner(config).DryRun()
	}

	if config.Secret == "" {
		return fmt.Errorf("signing secret is required (use --secret or set LINEAR_WEBHOOK_SECRET)")
	}

	if err := seeder.NewRunner(config).Run(); err != nil {
		return fmt.Errorf("seeder failed: %w", err)
	}

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/telhawk-systems/larkrelay/internal/config"
	"github.com/telhawk-systems/larkrelay/pkg/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Relay configuration commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long:  "Write a config file populated with the relay's default settings (default: ./larkrelay.yaml)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "larkrelay.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}

		data, err := yaml.Marshal(starterConfig(config.Default()))
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		if err := os.WriteFile(path, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		output.Success("Wrote %s", path)
		output.Info("Set linear.webhook_secret (or LINEAR_WEBHOOK_SECRET) before starting the relay")
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a relay config file",
	Long:  "Load a config file the way the relay would and report any problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config is invalid: %w", err)
		}

		output.Success("Configuration is valid")
		fmt.Printf("  Listen port: %d\n", cfg.Server.Port)
		fmt.Printf("  Lark webhook configured: %t\n", cfg.Lark.WebhookURL != "")
		fmt.Printf("  Rate limiting: %t\n", cfg.RateLimit.Enabled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}

// starterYAML mirrors config.Config for the generated file, with durations
// in their human form ("10s") rather than nanosecond counts.
type starterYAML struct {
	Server struct {
		Port         int    `yaml:"port"`
		ReadTimeout  string `yaml:"read_timeout"`
		WriteTimeout string `yaml:"write_timeout"`
		IdleTimeout  string `yaml:"idle_timeout"`
		MaxBodyBytes int64  `yaml:"max_body_bytes"`
	} `yaml:"server"`
	Linear struct {
		WebhookSecret string `yaml:"webhook_secret"`
	} `yaml:"linear"`
	Lark struct {
		WebhookURL string `yaml:"webhook_url"`
		Timeout    string `yaml:"timeout"`
	} `yaml:"lark"`
	RateLimit struct {
		Enabled        bool   `yaml:"enabled"`
		RedisAddr      string `yaml:"redis_addr"`
		RequestsPerMin int    `yaml:"requests_per_min"`
	} `yaml:"ratelimit"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

func starterConfig(cfg *config.Config) starterYAML {
	var s starterYAML
	s.Server.Port = cfg.Server.Port
	s.Server.ReadTimeout = cfg.Server.ReadTimeout.String()
	s.Server.WriteTimeout = cfg.Server.WriteTimeout.String()
	s.Server.IdleTimeout = cfg.Server.IdleTimeout.String()
	s.Server.MaxBodyBytes = cfg.Server.MaxBodyBytes
	s.Linear.WebhookSecret = cfg.Linear.WebhookSecret
	s.Lark.WebhookURL = cfg.Lark.WebhookURL
	s.Lark.Timeout = cfg.Lark.Timeout.String()
	s.RateLimit.Enabled = cfg.RateLimit.Enabled
	s.RateLimit.RedisAddr = cfg.RateLimit.RedisAddr
	s.RateLimit.RequestsPerMin = cfg.RateLimit.RequestsPerMin
	s.Logging.Level = cfg.Logging.Level
	s.Logging.Format = cfg.Logging.Format
	return s
}

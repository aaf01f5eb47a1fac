package seeder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the seeder settings.
type Config struct {
	RelayURL string        `mapstructure:"relay_url" yaml:"relay_url"`
	Secret   string        `mapstructure:"secret" yaml:"secret"`
	Count    int           `mapstructure:"count" yaml:"count"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Teams    []string      `mapstructure:"teams" yaml:"teams"`
	Mix      MixConfig     `mapstructure:"mix" yaml:"mix"`
}

// MixConfig controls how much of the generated traffic exercises the
// relay's skip paths instead of its delivery path.
type MixConfig struct {
	Comments float64 `mapstructure:"comments" yaml:"comments"`
	Removals float64 `mapstructure:"removals" yaml:"removals"`
}

// LoadConfig loads configuration with cascade: flags > ./seeder.yaml > ~/.larkrelay/seeder.yaml > defaults
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("seeder")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SEEDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".larkrelay"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found - that's OK, we have defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("relay_url", "http://localhost:3000")
	v.SetDefault("count", 50)
	v.SetDefault("interval", 0)
	v.SetDefault("teams", []string{"ENG", "OPS", "DESIGN"})
	v.SetDefault("mix.comments", 0.1)
	v.SetDefault("mix.removals", 0.1)

	// No default secret - must be provided
	v.SetDefault("secret", "")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.Mix.Comments < 0 || c.Mix.Removals < 0 {
		return fmt.Errorf("mix fractions must not be negative")
	}
	if c.Mix.Comments+c.Mix.Removals > 1 {
		return fmt.Errorf("mix fractions sum to %.2f (must not exceed 1)", c.Mix.Comments+c.Mix.Removals)
	}
	if len(c.Teams) == 0 {
		return fmt.Errorf("at least one team key is required")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Linear    LinearConfig    `mapstructure:"linear" yaml:"linear"`
	Lark      LarkConfig      `mapstructure:"lark" yaml:"lark"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" yaml:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

type LinearConfig struct {
	// WebhookSecret is the shared secret Linear signs request bodies with.
	// Never logged.
	WebhookSecret string `mapstructure:"webhook_secret" yaml:"webhook_secret"`
}

type LarkConfig struct {
	WebhookURL string        `mapstructure:"webhook_url" yaml:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type RateLimitConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	RedisAddr      string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RequestsPerMin int    `mapstructure:"requests_per_min" yaml:"requests_per_min"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Load reads configuration with cascade: env > config file > defaults.
// Every key is reachable as LARKRELAY_<SECTION>_<KEY>; the handful of
// variables the service has historically been deployed with
// (LINEAR_WEBHOOK_SECRET, LARK_WEBHOOK_URL, PORT) keep working as aliases.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("larkrelay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/larkrelay")
	}

	// Environment variables override
	v.SetEnvPrefix("LARKRELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("server.port", "LARKRELAY_SERVER_PORT", "PORT")
	v.BindEnv("linear.webhook_secret", "LARKRELAY_LINEAR_WEBHOOK_SECRET", "LINEAR_WEBHOOK_SECRET")
	v.BindEnv("lark.webhook_url", "LARKRELAY_LARK_WEBHOOK_URL", "LARK_WEBHOOK_URL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 1048576)
	v.SetDefault("linear.webhook_secret", "")
	v.SetDefault("lark.webhook_url", "")
	v.SetDefault("lark.timeout", "10s")
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.redis_addr", "localhost:6379")
	v.SetDefault("ratelimit.requests_per_min", 300)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Default returns the built-in configuration, the same values Load falls
// back to with no file and no environment set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; failing to decode them is a programming error.
		panic(fmt.Sprintf("decode default config: %v", err))
	}
	return &cfg
}

// Validate reports configuration the relay cannot start with.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Linear.WebhookSecret) == "" {
		problems = append(problems, "linear webhook secret is required; set LINEAR_WEBHOOK_SECRET")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server port %d is out of range", c.Server.Port))
	}
	if c.RateLimit.Enabled && strings.TrimSpace(c.RateLimit.RedisAddr) == "" {
		problems = append(problems, "ratelimit.redis_addr is required when rate limiting is enabled")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

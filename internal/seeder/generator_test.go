package seeder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/larkrelay/pkg/linear"
)

func defaultTestConfig() *Config {
	return &Config{
		RelayURL: "http://localhost:3000",
		Count:    50,
		Teams:    []string{"ENG", "OPS"},
		Mix:      MixConfig{Comments: 0.1, Removals: 0.1},
	}
}

// Every generated event must survive the relay's own parser, otherwise the
// seeder would just be measuring 400s.
func TestGenerateEvent_ParsesAsWebhookPayload(t *testing.T) {
	cfg := defaultTestConfig()

	for i := 0; i < 200; i++ {
		evt := GenerateEvent(cfg)

		body, err := json.Marshal(evt)
		require.NoError(t, err)

		parsed, err := linear.Parse(body)
		require.NoError(t, err, "generated event must parse: %s", body)

		assert.Contains(t, []string{"create", "update", "remove"}, parsed.Action)
		assert.Contains(t, []string{"Issue", "Comment"}, parsed.Kind)
		assert.GreaterOrEqual(t, parsed.Data.Priority, 0)
		assert.LessOrEqual(t, parsed.Data.Priority, 4)
		assert.NotEmpty(t, parsed.Data.Identifier)
		assert.True(t,
			strings.HasPrefix(parsed.Data.Identifier, "ENG-") || strings.HasPrefix(parsed.Data.Identifier, "OPS-"),
			"identifier %q should start with a configured team key", parsed.Data.Identifier)
	}
}

func TestGenerateEvent_MixZeroNeverSkips(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Mix = MixConfig{}

	for i := 0; i < 200; i++ {
		evt := GenerateEvent(cfg)
		assert.Equal(t, "Issue", evt.Kind)
		assert.Contains(t, []string{"create", "update"}, evt.Action)
	}
}

func TestGenerateEvent_AllComments(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Mix = MixConfig{Comments: 1.0}

	for i := 0; i < 50; i++ {
		assert.Equal(t, "Comment", GenerateEvent(cfg).Kind)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero count",
			mutate:  func(c *Config) { c.Count = 0 },
			wantErr: "count must be positive",
		},
		{
			name:    "negative mix",
			mutate:  func(c *Config) { c.Mix.Comments = -0.1 },
			wantErr: "must not be negative",
		},
		{
			name:    "mix over one",
			mutate:  func(c *Config) { c.Mix = MixConfig{Comments: 0.6, Removals: 0.6} },
			wantErr: "must not exceed 1",
		},
		{
			name:    "no teams",
			mutate:  func(c *Config) { c.Teams = nil },
			wantErr: "at least one team",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

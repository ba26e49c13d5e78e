package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative stagger", mutate: func(c *Config) { c.Paste.ImageStagger = -5 }, wantErr: "paste.image_stagger"},
		{name: "zero stagger", mutate: func(c *Config) { c.Paste.ImageStagger = 0 }},
		{name: "blank prose mode", mutate: func(c *Config) { c.Paste.ProseModes = []string{" "} }, wantErr: "paste.prose_modes[0]"},
		{name: "no prose modes", mutate: func(c *Config) { c.Paste.ProseModes = nil }},
		{name: "id scheme", mutate: func(c *Config) { c.Paste.IDScheme = "random" }, wantErr: "paste.id_scheme"},
		{name: "timeout", mutate: func(c *Config) { c.Probe.TimeoutMs = 0 }, wantErr: "probe.timeout_ms"},
		{name: "max bytes", mutate: func(c *Config) { c.Probe.MaxBytes = -1 }, wantErr: "probe.max_bytes"},
		{name: "cache size", mutate: func(c *Config) { c.Probe.CacheSize = -1 }, wantErr: "probe.cache_size"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

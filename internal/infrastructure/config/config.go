// Package config loads, validates, watches and writes canvasclip configuration.
package config

import "time"

const (
	dirPerm  = 0755
	filePerm = 0644
)

// IDScheme selects how pasted card ids are generated.
type IDScheme string

const (
	IDSchemeTimestamp IDScheme = "timestamp"
	IDSchemeUUIDv7    IDScheme = "uuid7"
)

// Config represents the complete configuration for canvasclip.
type Config struct {
	// Paste controls how clipboard payloads become cards.
	Paste PasteConfig `mapstructure:"paste" toml:"paste" json:"paste"`
	// Probe controls the image loadability probe used for pasted URLs.
	Probe   ProbeConfig   `mapstructure:"probe" toml:"probe" json:"probe"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// PasteConfig holds resolver options.
type PasteConfig struct {
	// ImageStagger is the diagonal offset between consecutive pasted images, in canvas units.
	ImageStagger float64 `mapstructure:"image_stagger" toml:"image_stagger" json:"image_stagger" jsonschema:"minimum=0"`
	// ProseModes lists editor language modes kept verbatim instead of code-fenced.
	ProseModes []string `mapstructure:"prose_modes" toml:"prose_modes" json:"prose_modes"`
	IDScheme   IDScheme `mapstructure:"id_scheme" toml:"id_scheme" json:"id_scheme" jsonschema:"enum=timestamp,enum=uuid7"`
}

// ProbeConfig holds image probe options.
type ProbeConfig struct {
	TimeoutMs int `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
	// MaxBytes bounds both the probe read and inline-encoded image size.
	MaxBytes  int64 `mapstructure:"max_bytes" toml:"max_bytes" json:"max_bytes" jsonschema:"minimum=1"`
	CacheSize int   `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=0"`
	// AllowInsecureHTTP permits probing plain http:// references.
	AllowInsecureHTTP bool `mapstructure:"allow_insecure_http" toml:"allow_insecure_http" json:"allow_insecure_http"`
}

// Timeout returns the probe timeout as a duration.
func (p ProbeConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMs) * time.Millisecond
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

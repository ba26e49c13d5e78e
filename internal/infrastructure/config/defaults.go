package config

const (
	defaultImageStagger = 20
	defaultProbeTimeout = 3000
	defaultMaxBytes     = 10 << 20
	defaultCacheSize    = 128
)

// DefaultProseModes are the editor modes whose text is pasted verbatim.
func DefaultProseModes() []string {
	return []string{"plaintext", "markdown"}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Paste: PasteConfig{
			ImageStagger: defaultImageStagger,
			ProseModes:   DefaultProseModes(),
			IDScheme:     IDSchemeTimestamp,
		},
		Probe: ProbeConfig{
			TimeoutMs:         defaultProbeTimeout,
			MaxBytes:          defaultMaxBytes,
			CacheSize:         defaultCacheSize,
			AllowInsecureHTTP: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

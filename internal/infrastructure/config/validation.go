package config

import (
	"fmt"
	"slices"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePaste(config)...)
	validationErrors = append(validationErrors, validateProbe(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePaste(config *Config) []string {
	var validationErrors []string
	if config.Paste.ImageStagger < 0 {
		validationErrors = append(validationErrors, "paste.image_stagger must be non-negative")
	}
	for i, mode := range config.Paste.ProseModes {
		if strings.TrimSpace(mode) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("paste.prose_modes[%d] must not be empty", i))
		}
	}
	switch config.Paste.IDScheme {
	case IDSchemeTimestamp, IDSchemeUUIDv7:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("paste.id_scheme must be one of: timestamp, uuid7 (got: %s)", config.Paste.IDScheme))
	}
	return validationErrors
}

func validateProbe(config *Config) []string {
	var validationErrors []string
	if config.Probe.TimeoutMs <= 0 {
		validationErrors = append(validationErrors, "probe.timeout_ms must be positive")
	}
	if config.Probe.MaxBytes <= 0 {
		validationErrors = append(validationErrors, "probe.max_bytes must be positive")
	}
	if config.Probe.CacheSize < 0 {
		validationErrors = append(validationErrors, "probe.cache_size must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	validLevels := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s (got: %s)", strings.Join(validLevels, ", "), config.Logging.Level))
	}
	validFormats := []string{"console", "json"}
	if !slices.Contains(validFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s (got: %s)", strings.Join(validFormats, ", "), config.Logging.Format))
	}
	return validationErrors
}

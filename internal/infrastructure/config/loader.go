package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// CANVASCLIP_PASTE_IMAGE_STAGGER, CANVASCLIP_PROBE_TIMEOUT_MS, ...
	v.SetEnvPrefix("CANVASCLIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CANVASCLIP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CANVASCLIP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CANVASCLIP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CANVASCLIP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is created on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.apply()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.dir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if _, createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// apply unmarshals, normalizes and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) apply() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	switch IDScheme(strings.ToLower(strings.TrimSpace(string(config.Paste.IDScheme)))) {
	case IDSchemeUUIDv7:
		config.Paste.IDScheme = IDSchemeUUIDv7
	default:
		config.Paste.IDScheme = IDSchemeTimestamp
	}

	modes := make([]string, 0, len(config.Paste.ProseModes))
	for _, mode := range config.Paste.ProseModes {
		mode = strings.ToLower(strings.TrimSpace(mode))
		if mode != "" && !slices.Contains(modes, mode) {
			modes = append(modes, mode)
		}
	}
	config.Paste.ProseModes = modes

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// Get returns the current configuration (thread-safe).
// Before a successful Load it returns the defaults.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Paste.ProseModes = slices.Clone(m.config.Paste.ProseModes)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, "config.toml")
}

// createDefaultConfig writes the default configuration and its schema.
func (m *Manager) createDefaultConfig() (string, error) {
	configFile := filepath.Join(m.dir, "config.toml")
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return "", err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return "", err
	}
	if err := WriteSchemaFile(filepath.Join(m.dir, "config.schema.json"), ConfigSchema()); err != nil {
		return "", err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return configFile, nil
}

// InitConfigFile writes the default configuration file. An existing file is
// only replaced when force is set.
func (m *Manager) InitConfigFile(force bool) (string, error) {
	configFile := filepath.Join(m.dir, "config.toml")
	if _, err := os.Stat(configFile); err == nil && !force {
		return configFile, fmt.Errorf("config file already exists at %s (use --force to overwrite)", configFile)
	}
	return m.createDefaultConfig()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("paste.image_stagger", defaults.Paste.ImageStagger)
	m.viper.SetDefault("paste.prose_modes", defaults.Paste.ProseModes)
	m.viper.SetDefault("paste.id_scheme", string(defaults.Paste.IDScheme))

	m.viper.SetDefault("probe.timeout_ms", defaults.Probe.TimeoutMs)
	m.viper.SetDefault("probe.max_bytes", defaults.Probe.MaxBytes)
	m.viper.SetDefault("probe.cache_size", defaults.Probe.CacheSize)
	m.viper.SetDefault("probe.allow_insecure_http", defaults.Probe.AllowInsecureHTTP)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

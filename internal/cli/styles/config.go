package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/canvasclip/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location.
func (r *ConfigRenderer) RenderConfigPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderCreated renders the message shown after writing a default config.
func (r *ConfigRenderer) RenderCreated(path string) string {
	return fmt.Sprintf("\n  %s Created %s\n", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderConfig renders the effective configuration values.
func (r *ConfigRenderer) RenderConfig(cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valueStyle := r.theme.Highlight

	rows := [][2]string{
		{"paste.image_stagger", fmt.Sprintf("%g", cfg.Paste.ImageStagger)},
		{"paste.prose_modes", strings.Join(cfg.Paste.ProseModes, ", ")},
		{"paste.id_scheme", string(cfg.Paste.IDScheme)},
		{"probe.timeout_ms", fmt.Sprintf("%d", cfg.Probe.TimeoutMs)},
		{"probe.max_bytes", fmt.Sprintf("%d", cfg.Probe.MaxBytes)},
		{"probe.cache_size", fmt.Sprintf("%d", cfg.Probe.CacheSize)},
		{"probe.allow_insecure_http", fmt.Sprintf("%t", cfg.Probe.AllowInsecureHTTP)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", iconStyle.Render(IconCursor), keyStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

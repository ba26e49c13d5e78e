package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultProseModes are editor modes whose text is pasted as-is.
var DefaultProseModes = []string{"plaintext", "markdown"}

// ErrNoEditorMode is returned when editor metadata carries no mode.
var ErrNoEditorMode = errors.New("editor context has no mode")

// EditorContext is the sidecar metadata a code editor offers with copied text.
type EditorContext struct {
	Version         int      `json:"version,omitempty"`
	IsFromEmptyLine bool     `json:"isFromEmptySelection,omitempty"`
	Multicursor     []string `json:"multicursorText,omitempty"`
	Mode            string   `json:"mode"`
}

// ParseEditorContext classifies the raw editor context representation.
func ParseEditorContext(raw string) Representation[EditorContext] {
	var ec EditorContext
	if err := json.Unmarshal([]byte(raw), &ec); err != nil {
		return MalformedOf[EditorContext](fmt.Errorf("failed to decode editor context: %w", err))
	}
	ec.Mode = strings.TrimSpace(ec.Mode)
	if ec.Mode == "" {
		return MalformedOf[EditorContext](ErrNoEditorMode)
	}
	return ValidOf(ec)
}

// IsCodeMode reports whether mode names a source language rather than prose.
func IsCodeMode(mode string, proseModes []string) bool {
	if mode == "" {
		return false
	}
	return !slices.Contains(proseModes, mode)
}

package entity

import "strings"

// Representation labels offered inside a clipboard or drag payload.
const (
	// RepresentationCards carries the structured form of copied cards.
	RepresentationCards = "cards"
	// RepresentationPlainText carries arbitrary text.
	RepresentationPlainText = "text/plain"
	// RepresentationEditorContext is the sidecar metadata code editors
	// attach next to text/plain (it holds the source language mode).
	RepresentationEditorContext = "vscode-editor-data"
)

// ItemKind tells file items apart from string items in a payload.
type ItemKind string

const (
	ItemKindString ItemKind = "string"
	ItemKindFile   ItemKind = "file"
)

// OfferedFile is a binary blob offered in a payload.
type OfferedFile struct {
	Name     string `json:"name,omitempty"`
	MIMEType string `json:"type"`
	Data     []byte `json:"data"`
}

// IsImage reports whether the file declares an image MIME type.
func (f OfferedFile) IsImage() bool {
	return strings.HasPrefix(f.MIMEType, "image")
}

// OutboundPayload is what a copy hands to the platform clipboard:
// the same card set as lossy plain text and as a lossless structured form.
type OutboundPayload struct {
	PlainText string
	Cards     string
}

// Representations returns the payload keyed by representation label.
func (p OutboundPayload) Representations() map[string]string {
	return map[string]string{
		RepresentationPlainText: p.PlainText,
		RepresentationCards:     p.Cards,
	}
}

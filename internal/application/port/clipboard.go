// Package port defines the boundaries between the clipboard use cases and
// the platform: transports, probes, encoders and the card factory.
package port

import (
	"context"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// PayloadItem is one entry in a clipboard or drag payload.
type PayloadItem interface {
	// Kind reports whether the item is a string or a file item.
	Kind() entity.ItemKind

	// Type returns the representation label (e.g. "text/plain", "cards").
	Type() string

	// Text extracts the item's textual content.
	Text(ctx context.Context) (string, error)
}

// Payload is the read-only bundle of representations offered by the platform.
// This abstracts platform-specific transports (wl-clipboard, xclip, drag data).
type Payload interface {
	// Files returns the offered binary files.
	Files() []entity.OfferedFile

	// Items returns every offered item, files included.
	Items() []PayloadItem
}

// PayloadSource reads the current payload from a platform clipboard.
type PayloadSource interface {
	ReadPayload(ctx context.Context) (Payload, error)
}

// CopyHandler supplies the outbound payload for a single platform copy.
type CopyHandler interface {
	// Redeem returns the payload the first time it is called.
	// Later calls, or calls after the handler was invalidated, return false.
	Redeem() (entity.OutboundPayload, bool)
}

// CopyTransport triggers a platform copy that is served by handler.
type CopyTransport interface {
	TriggerCopy(ctx context.Context, handler CopyHandler) error
}

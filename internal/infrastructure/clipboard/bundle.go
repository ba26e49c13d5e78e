package clipboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// Bundle is a clipboard payload serialized as JSON. It carries every
// representation a system clipboard tool cannot, so copy and paste can be
// round-tripped through files or pipes.
//
//	{"files":[{"name":"a.png","type":"image/png","data":"<base64>"}],
//	 "items":[{"type":"text/plain","data":"hello"}]}
type Bundle struct {
	BundleFiles []entity.OfferedFile `json:"files,omitempty"`
	BundleItems []BundleItem         `json:"items,omitempty"`
}

// BundleItem is one string representation in a bundle.
type BundleItem struct {
	Label string `json:"type"`
	Data  string `json:"data"`
}

// ReadBundle decodes a bundle from r.
func ReadBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := json.NewDecoder(r)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return &Bundle{}, nil
		}
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return &b, nil
}

// BundleFromOutbound builds a bundle holding every representation of a copy.
func BundleFromOutbound(p entity.OutboundPayload) *Bundle {
	return &Bundle{BundleItems: []BundleItem{
		{Label: entity.RepresentationCards, Data: p.Cards},
		{Label: entity.RepresentationPlainText, Data: p.PlainText},
	}}
}

// Write encodes the bundle to w as indented JSON.
func (b *Bundle) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return nil
}

// Files implements port.Payload.
func (b *Bundle) Files() []entity.OfferedFile { return b.BundleFiles }

// Items implements port.Payload. File entries come first, one item each,
// followed by the string items in bundle order.
func (b *Bundle) Items() []port.PayloadItem {
	items := make([]port.PayloadItem, 0, len(b.BundleFiles)+len(b.BundleItems))
	for _, f := range b.BundleFiles {
		items = append(items, fileItem{mime: f.MIMEType})
	}
	for _, it := range b.BundleItems {
		items = append(items, it)
	}
	return items
}

func (it BundleItem) Kind() entity.ItemKind { return entity.ItemKindString }
func (it BundleItem) Type() string          { return it.Label }

// Text returns the item data.
func (it BundleItem) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return it.Data, nil
}

// BundleSource implements port.PayloadSource over a reader.
type BundleSource struct {
	r io.Reader
}

// NewBundleSource creates a payload source that decodes a bundle from r on read.
func NewBundleSource(r io.Reader) *BundleSource {
	return &BundleSource{r: r}
}

// ReadPayload implements port.PayloadSource.
func (s *BundleSource) ReadPayload(ctx context.Context) (port.Payload, error) {
	b, err := ReadBundle(s.r)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("bundle read failed")
		return nil, err
	}
	return b, nil
}

// BundleWriter implements port.CopyTransport by writing the full payload
// as a bundle.
type BundleWriter struct {
	w io.Writer
}

// NewBundleWriter creates a copy transport writing bundles to w.
func NewBundleWriter(w io.Writer) *BundleWriter {
	return &BundleWriter{w: w}
}

// TriggerCopy implements port.CopyTransport.
func (bw *BundleWriter) TriggerCopy(ctx context.Context, handler port.CopyHandler) error {
	payload, ok := handler.Redeem()
	if !ok {
		return ErrHandlerSpent
	}
	if err := BundleFromOutbound(payload).Write(bw.w); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Int("text_len", len(payload.PlainText)).
		Int("cards_len", len(payload.Cards)).
		Msg("bundle written")
	return nil
}

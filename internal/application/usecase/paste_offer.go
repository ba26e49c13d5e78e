package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/canvasclip/internal/application/port"
	domainclip "github.com/bnema/canvasclip/internal/domain/clipboard"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// pasteOffer is the classified snapshot of one payload.
// Each representation kind is absent, malformed or valid.
type pasteOffer struct {
	drop   entity.Position
	images []entity.OfferedFile
	cards  domainclip.Representation[[]entity.CardSnapshot]
	text   domainclip.Representation[string]
	editor domainclip.Representation[domainclip.EditorContext]

	// diagnostics for the empty case
	types     []string
	fileCount int
}

// classify reads the payload once. Text of the relevant items is extracted
// concurrently; the first item offered for a label wins.
func (uc *PasteCardsUseCase) classify(ctx context.Context, payload port.Payload, drop entity.Position) *pasteOffer {
	offer := &pasteOffer{
		drop:   drop,
		cards:  domainclip.AbsentOf[[]entity.CardSnapshot](),
		text:   domainclip.AbsentOf[string](),
		editor: domainclip.AbsentOf[domainclip.EditorContext](),
	}
	if payload == nil {
		return offer
	}

	files := payload.Files()
	offer.fileCount = len(files)
	for _, f := range files {
		if f.IsImage() {
			offer.images = append(offer.images, f)
		}
	}

	wanted := []string{
		entity.RepresentationCards,
		entity.RepresentationPlainText,
		entity.RepresentationEditorContext,
	}
	picked := make(map[string]port.PayloadItem, len(wanted))
	for _, item := range payload.Items() {
		if item == nil || item.Kind() == entity.ItemKindFile {
			continue
		}
		offer.types = append(offer.types, item.Type())
		if _, seen := picked[item.Type()]; !seen {
			picked[item.Type()] = item
		}
	}

	raw := make([]domainclip.Representation[string], len(wanted))
	var g errgroup.Group
	for i, label := range wanted {
		item, ok := picked[label]
		if !ok {
			raw[i] = domainclip.AbsentOf[string]()
			continue
		}
		g.Go(func() error {
			text, err := item.Text(ctx)
			if err != nil {
				raw[i] = domainclip.MalformedOf[string](err)
				return nil
			}
			raw[i] = domainclip.ValidOf(text)
			return nil
		})
	}
	_ = g.Wait()

	log := logging.FromContext(ctx)
	for i, label := range wanted {
		if raw[i].State == domainclip.Malformed {
			log.Debug().Err(raw[i].Err).Str("type", label).Msg("failed to read payload item")
		}
	}

	offer.cards = parseRaw(raw[0], domainclip.ParseCards)
	offer.text = raw[1]
	offer.editor = parseRaw(raw[2], domainclip.ParseEditorContext)
	return offer
}

// parseRaw applies parse to a valid raw string and carries absent or
// malformed states through unchanged.
func parseRaw[T any](raw domainclip.Representation[string], parse func(string) domainclip.Representation[T]) domainclip.Representation[T] {
	switch raw.State {
	case domainclip.Valid:
		return parse(raw.Value)
	case domainclip.Malformed:
		return domainclip.MalformedOf[T](raw.Err)
	default:
		return domainclip.AbsentOf[T]()
	}
}

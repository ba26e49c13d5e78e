package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	domainclip "github.com/bnema/canvasclip/internal/domain/clipboard"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// Cascade step names, in evaluation order.
const (
	StepImageIngest   = "image-ingest"
	StepCardReplay    = "card-replay"
	StepImageURLSniff = "image-url-sniff"
	StepCodeFence     = "code-fence"
	StepPlainText     = "plain-text"
)

// pasteStep handles the offer or passes it on to the next step.
// A step may rewrite the offer before passing, as the code fence step does.
type pasteStep struct {
	name string
	run  func(ctx context.Context, offer *pasteOffer) ([]entity.CardRequest, bool)
}

func (uc *PasteCardsUseCase) cascade() []pasteStep {
	return []pasteStep{
		{name: StepImageIngest, run: uc.ingestImages},
		{name: StepCardReplay, run: uc.replayCards},
		{name: StepImageURLSniff, run: uc.sniffImageURL},
		{name: StepCodeFence, run: uc.fenceCode},
		{name: StepPlainText, run: uc.pastePlainText},
	}
}

// ingestImages turns every image file into an image card. Files are
// encoded concurrently and staggered from the drop position in offer order.
// Any image file short-circuits the cascade, even if none can be encoded.
func (uc *PasteCardsUseCase) ingestImages(ctx context.Context, offer *pasteOffer) ([]entity.CardRequest, bool) {
	if len(offer.images) == 0 {
		return nil, false
	}
	log := logging.FromContext(ctx)

	encoded := make([]string, len(offer.images))
	failed := make([]bool, len(offer.images))
	var g errgroup.Group
	for i, file := range offer.images {
		g.Go(func() error {
			if uc.encoder == nil {
				failed[i] = true
				return nil
			}
			data, err := uc.encoder.EncodeInline(ctx, file)
			if err != nil {
				log.Debug().Err(err).Str("name", file.Name).Str("type", file.MIMEType).Msg("failed to encode pasted image")
				failed[i] = true
				return nil
			}
			encoded[i] = data
			return nil
		})
	}
	_ = g.Wait()

	contents := make([]string, 0, len(encoded))
	for i, data := range encoded {
		if !failed[i] {
			contents = append(contents, data)
		}
	}

	if len(contents) == 0 {
		log.Info().Int("files", len(offer.images)).Msg("no pasted image could be encoded")
		return []entity.CardRequest{}, true
	}

	ids := uc.ids.Batch(len(contents))
	requests := make([]entity.CardRequest, len(contents))
	for i, data := range contents {
		requests[i] = entity.CardRequest{
			ID:      ids[i],
			Type:    entity.CardTypeImage,
			Pos:     offer.drop.Offset(float64(i) * uc.opts.ImageStagger),
			Content: data,
		}
	}
	return requests, true
}

// replayCards re-creates a copied card group at the drop position,
// preserving each card's offset from the group's first card.
func (uc *PasteCardsUseCase) replayCards(ctx context.Context, offer *pasteOffer) ([]entity.CardRequest, bool) {
	if offer.cards.State == domainclip.Malformed {
		logging.FromContext(ctx).Debug().Err(offer.cards.Err).Msg("ignoring malformed cards payload")
	}
	if !offer.cards.Ok() {
		return nil, false
	}

	snapshots := offer.cards.Value
	anchor, ok := domainclip.Anchor(snapshots)
	if !ok {
		logging.FromContext(ctx).Debug().Msg("ignoring empty cards payload")
		return nil, false
	}

	ids := uc.ids.Batch(len(snapshots))
	requests := make([]entity.CardRequest, len(snapshots))
	for i, s := range snapshots {
		requests[i] = entity.CardRequest{
			ID:      ids[i],
			Type:    s.Type,
			Pos:     domainclip.Reanchor(s.Pos, anchor, offer.drop),
			Content: s.Content,
		}
	}
	return requests, true
}

// sniffImageURL pastes text as an image reference when it loads as one.
// A bare URL reads like ordinary text, so this has to run before any
// text handling.
func (uc *PasteCardsUseCase) sniffImageURL(ctx context.Context, offer *pasteOffer) ([]entity.CardRequest, bool) {
	if !offer.text.Ok() || uc.probe == nil {
		return nil, false
	}
	if !uc.probe.Loadable(ctx, offer.text.Value) {
		return nil, false
	}

	return []entity.CardRequest{{
		ID:      uc.ids.Batch(1)[0],
		Type:    entity.CardTypeImage,
		Pos:     offer.drop,
		Content: offer.text.Value,
	}}, true
}

// fenceCode rewrites text copied from a code editor as markdown code.
// It never handles the offer itself.
func (uc *PasteCardsUseCase) fenceCode(ctx context.Context, offer *pasteOffer) ([]entity.CardRequest, bool) {
	if !offer.text.Ok() {
		return nil, false
	}
	if offer.editor.State == domainclip.Malformed {
		logging.FromContext(ctx).Debug().Err(offer.editor.Err).Msg("ignoring malformed editor context")
	}
	if !offer.editor.Ok() {
		return nil, false
	}

	mode := offer.editor.Value.Mode
	offer.text.Value = domainclip.FormatForMode(offer.text.Value, mode, uc.opts.ProseModes)
	return nil, false
}

func (uc *PasteCardsUseCase) pastePlainText(_ context.Context, offer *pasteOffer) ([]entity.CardRequest, bool) {
	if !offer.text.Ok() {
		return nil, false
	}

	return []entity.CardRequest{{
		ID:      uc.ids.Batch(1)[0],
		Type:    entity.CardTypeText,
		Pos:     offer.drop,
		Content: offer.text.Value,
	}}, true
}

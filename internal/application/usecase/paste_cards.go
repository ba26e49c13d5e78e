package usecase

import (
	"context"
	"errors"

	"github.com/bnema/canvasclip/internal/application/port"
	domainclip "github.com/bnema/canvasclip/internal/domain/clipboard"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// DefaultImageStagger is the offset, on both axes, between successive
// images of a multi-image paste.
const DefaultImageStagger = 20

// ErrNoIDGenerator is returned when the paste use case is built without
// an id generator.
var ErrNoIDGenerator = errors.New("id generator is required")

// PasteOptions holds policy knobs of the paste cascade.
type PasteOptions struct {
	// ImageStagger offsets each successive pasted image from the previous one.
	ImageStagger float64
	// ProseModes are editor modes whose text is not wrapped as code.
	// Nil means domainclip.DefaultProseModes.
	ProseModes []string
}

// DefaultPasteOptions returns the stock paste policy.
func DefaultPasteOptions() PasteOptions {
	return PasteOptions{
		ImageStagger: DefaultImageStagger,
		ProseModes:   domainclip.DefaultProseModes,
	}
}

// PasteCardsUseCase resolves an inbound clipboard or drag payload into
// card creation requests.
type PasteCardsUseCase struct {
	factory port.CardFactory
	probe   port.ImageProbe
	encoder port.FileEncoder
	ids     port.IDGenerator
	opts    PasteOptions
	steps   []pasteStep
}

// NewPasteCardsUseCase creates a new PasteCardsUseCase.
// ids is required. A nil probe disables image URL detection and a nil
// factory falls back to entity.NewCard.
func NewPasteCardsUseCase(
	factory port.CardFactory,
	probe port.ImageProbe,
	encoder port.FileEncoder,
	ids port.IDGenerator,
	opts PasteOptions,
) (*PasteCardsUseCase, error) {
	if ids == nil {
		return nil, ErrNoIDGenerator
	}
	if factory == nil {
		factory = port.CardFactoryFunc(entity.NewCard)
	}
	if opts.ProseModes == nil {
		opts.ProseModes = domainclip.DefaultProseModes
	}

	uc := &PasteCardsUseCase{
		factory: factory,
		probe:   probe,
		encoder: encoder,
		ids:     ids,
		opts:    opts,
	}
	uc.steps = uc.cascade()
	return uc, nil
}

// Steps returns the names of the cascade steps in evaluation order.
func (uc *PasteCardsUseCase) Steps() []string {
	names := make([]string, len(uc.steps))
	for i, s := range uc.steps {
		names[i] = s.name
	}
	return names
}

// Resolve decides what the payload means and returns the cards to create
// at drop. It never fails: unreadable or malformed representations fall
// through to the next step, and the worst outcome is an empty list.
func (uc *PasteCardsUseCase) Resolve(ctx context.Context, payload port.Payload, drop entity.Position) []entity.CardRequest {
	ctx = logging.WithOperation(ctx, "paste")
	log := logging.FromContext(ctx)

	offer := uc.classify(ctx, payload, drop)

	for _, step := range uc.steps {
		requests, handled := step.run(ctx, offer)
		if !handled {
			continue
		}
		if requests == nil {
			requests = []entity.CardRequest{}
		}
		log.Debug().Str("step", step.name).Int("cards", len(requests)).Msg("paste resolved")
		return requests
	}

	log.Info().Strs("types", offer.types).Int("files", offer.fileCount).Msg("nothing to paste")
	return []entity.CardRequest{}
}

// Paste resolves the payload and builds the cards through the factory.
func (uc *PasteCardsUseCase) Paste(ctx context.Context, payload port.Payload, drop entity.Position) []entity.Card {
	requests := uc.Resolve(ctx, payload, drop)

	cards := make([]entity.Card, len(requests))
	for i, req := range requests {
		cards[i] = uc.factory.CreateCard(req)
	}
	return cards
}

// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/canvasclip/internal/application/port"
	domainclip "github.com/bnema/canvasclip/internal/domain/clipboard"
	"github.com/bnema/canvasclip/internal/domain/entity"
	"github.com/bnema/canvasclip/internal/logging"
)

// ErrNothingToCopy is returned when a copy is requested for an empty selection.
var ErrNothingToCopy = errors.New("no cards to copy")

type ticketState int

const (
	ticketIssued ticketState = iota
	ticketRedeemed
	ticketInvalidated
)

// CopyTicket is a single-use capability that serves one platform copy.
// It is issued with a prepared payload, redeemed at most once, and
// invalidated when the copy that issued it returns.
type CopyTicket struct {
	mu      sync.Mutex
	payload entity.OutboundPayload
	state   ticketState
}

func newCopyTicket(payload entity.OutboundPayload) *CopyTicket {
	return &CopyTicket{payload: payload}
}

// Redeem implements port.CopyHandler.
func (t *CopyTicket) Redeem() (entity.OutboundPayload, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != ticketIssued {
		return entity.OutboundPayload{}, false
	}
	t.state = ticketRedeemed
	return t.payload, true
}

// Invalidate makes any later Redeem fail. Safe to call more than once.
func (t *CopyTicket) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == ticketIssued {
		t.state = ticketInvalidated
	}
}

// Redeemed reports whether the ticket served a copy.
func (t *CopyTicket) Redeemed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == ticketRedeemed
}

// CopyCardsUseCase serializes a card selection for the clipboard.
type CopyCardsUseCase struct {
	transport port.CopyTransport
}

// NewCopyCardsUseCase creates a new CopyCardsUseCase.
func NewCopyCardsUseCase(transport port.CopyTransport) *CopyCardsUseCase {
	return &CopyCardsUseCase{
		transport: transport,
	}
}

// Serialize orders cards in reading order and builds both outbound
// representations from that order.
func (uc *CopyCardsUseCase) Serialize(cards []entity.Card) (entity.OutboundPayload, error) {
	ordered := domainclip.ReadingOrder(cards)

	structured, err := domainclip.EncodeCards(ordered)
	if err != nil {
		return entity.OutboundPayload{}, err
	}

	return entity.OutboundPayload{
		PlainText: domainclip.EncodePlainText(ordered),
		Cards:     structured,
	}, nil
}

// Copy prepares the payload and triggers a platform copy served by a
// one-shot ticket. The ticket is invalidated when Copy returns, so a copy
// handler can never leak into a later, unrelated copy.
func (uc *CopyCardsUseCase) Copy(ctx context.Context, cards []entity.Card) error {
	log := logging.FromContext(ctx)

	if len(cards) == 0 {
		log.Debug().Msg("copy cards: empty selection")
		return ErrNothingToCopy
	}

	if uc.transport == nil {
		log.Warn().Msg("copy cards: transport is nil")
		return fmt.Errorf("clipboard not available")
	}

	payload, err := uc.Serialize(cards)
	if err != nil {
		log.Error().Err(err).Msg("copy cards: serialization failed")
		return fmt.Errorf("serialize cards: %w", err)
	}

	ticket := newCopyTicket(payload)
	defer ticket.Invalidate()

	if err := uc.transport.TriggerCopy(ctx, ticket); err != nil {
		log.Error().Err(err).Int("cards", len(cards)).Msg("copy cards: trigger failed")
		return fmt.Errorf("clipboard copy failed: %w", err)
	}

	if !ticket.Redeemed() {
		log.Warn().Msg("copy cards: transport returned without redeeming the payload")
	}

	log.Debug().Int("cards", len(cards)).Int("text_len", len(payload.PlainText)).Msg("cards copied to clipboard")
	return nil
}

package entity

import "fmt"

// CardID uniquely identifies a card on the canvas.
type CardID string

// CardType is the variant tag of a card.
type CardType string

const (
	// CardTypeText holds raw text (possibly markdown).
	CardTypeText CardType = "text"
	// CardTypeImage holds a data URI or an image reference.
	CardTypeImage CardType = "image"
	// CardTypeStructured holds a serialized structured form.
	CardTypeStructured CardType = "structured"
)

// Valid reports whether t is one of the known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeText, CardTypeImage, CardTypeStructured:
		return true
	default:
		return false
	}
}

// Card is a positioned content block on the canvas.
// Cards are immutable once built by a CardFactory.
type Card struct {
	ID      CardID   `json:"id"`
	Type    CardType `json:"type"`
	Pos     Position `json:"pos"`
	Content string   `json:"content"`
}

// CardRequest asks the card factory for a new card.
// It has the same shape as Card but carries no derived state.
type CardRequest struct {
	ID      CardID   `json:"id"`
	Type    CardType `json:"type"`
	Pos     Position `json:"pos"`
	Content string   `json:"content"`
}

// CardSnapshot is the lossless element of the structured clipboard form.
// It carries no id: pasted cards are new cards.
type CardSnapshot struct {
	Type    CardType `json:"type" jsonschema:"enum=text,enum=image,enum=structured"`
	Pos     Position `json:"pos"`
	Content string   `json:"content"`
}

// Snapshot returns the structured clipboard form of the card.
func (c Card) Snapshot() CardSnapshot {
	return CardSnapshot{Type: c.Type, Pos: c.Pos, Content: c.Content}
}

// Validate checks that the snapshot carries a known card type.
func (s CardSnapshot) Validate() error {
	if !s.Type.Valid() {
		return fmt.Errorf("unknown card type %q", s.Type)
	}
	return nil
}

// NewCard is the default card factory: it builds a card from a request
// without adding any derived state.
func NewCard(req CardRequest) Card {
	return Card(req)
}

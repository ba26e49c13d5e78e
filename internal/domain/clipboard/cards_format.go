package clipboard

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// PlainTextSeparator joins card contents in the plain-text representation.
const PlainTextSeparator = "\n\n"

// EncodePlainText joins card contents in the given order.
// Type and position are dropped.
func EncodePlainText(cards []entity.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.Content
	}
	return strings.Join(parts, PlainTextSeparator)
}

// EncodeCards serializes cards to the structured clipboard form.
func EncodeCards(cards []entity.Card) (string, error) {
	snapshots := make([]entity.CardSnapshot, len(cards))
	for i, card := range cards {
		snapshots[i] = card.Snapshot()
	}

	data, err := json.Marshal(snapshots)
	if err != nil {
		return "", fmt.Errorf("failed to encode cards: %w", err)
	}
	return string(data), nil
}

// wireSnapshot tells a missing pos apart from one at the origin.
type wireSnapshot struct {
	Type    entity.CardType  `json:"type"`
	Pos     *entity.Position `json:"pos"`
	Content string           `json:"content"`
}

// DecodeCards parses the structured clipboard form.
// Every element needs a known type and a pos.
// An empty list is valid here; callers decide whether it is usable.
func DecodeCards(raw string) ([]entity.CardSnapshot, error) {
	var elements []wireSnapshot
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}

	snapshots := make([]entity.CardSnapshot, len(elements))
	for i, el := range elements {
		if el.Pos == nil {
			return nil, fmt.Errorf("card %d: missing pos", i)
		}
		s := entity.CardSnapshot{Type: el.Type, Pos: *el.Pos, Content: el.Content}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		snapshots[i] = s
	}
	return snapshots, nil
}

// ParseCards classifies the raw cards representation.
func ParseCards(raw string) Representation[[]entity.CardSnapshot] {
	snapshots, err := DecodeCards(raw)
	if err != nil {
		return MalformedOf[[]entity.CardSnapshot](err)
	}
	return ValidOf(snapshots)
}

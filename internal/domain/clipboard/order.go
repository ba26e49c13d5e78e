package clipboard

import (
	"slices"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

// ReadingOrder returns a copy of cards sorted top to bottom, then left to
// right. The sort is stable, so cards sharing a position keep their
// selection order. The input slice is left untouched.
func ReadingOrder(cards []entity.Card) []entity.Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b entity.Card) int {
		switch {
		case a.Pos.Before(b.Pos):
			return -1
		case b.Pos.Before(a.Pos):
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Anchor returns the reference corner of a copied group: the position of
// its first element. ok is false for an empty group.
func Anchor(snapshots []entity.CardSnapshot) (entity.Position, bool) {
	if len(snapshots) == 0 {
		return entity.Position{}, false
	}
	return snapshots[0].Pos, true
}

// Reanchor moves pos so the group anchored at from is re-anchored at to,
// preserving its offset from the anchor.
func Reanchor(pos, from, to entity.Position) entity.Position {
	return to.Add(pos.Sub(from))
}

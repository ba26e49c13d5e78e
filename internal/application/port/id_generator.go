package port

import "github.com/bnema/canvasclip/internal/domain/entity"

// IDGenerator issues card ids.
type IDGenerator interface {
	// Batch returns n ids that are pairwise distinct.
	Batch(n int) []entity.CardID
}

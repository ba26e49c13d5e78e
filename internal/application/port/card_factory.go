package port

import "github.com/bnema/canvasclip/internal/domain/entity"

// CardFactory builds cards from creation requests.
// It is assumed to always succeed for a well-formed request.
type CardFactory interface {
	CreateCard(req entity.CardRequest) entity.Card
}

// CardFactoryFunc adapts a function to CardFactory.
type CardFactoryFunc func(req entity.CardRequest) entity.Card

// CreateCard calls f(req).
func (f CardFactoryFunc) CreateCard(req entity.CardRequest) entity.Card {
	return f(req)
}

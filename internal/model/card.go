package model

import "context"

// CardStore defines persistence operations for extracted business cards.
type CardStore interface {
	GetByText(ctx context.Context, text string) (Card, error)
	GetByID(ctx context.Context, id int64) (Card, error)
	List(ctx context.Context) ([]Card, error)
	Create(ctx context.Context, card Card) (Card, error)
	Delete(ctx context.Context, id int64) error
}

// Card represents a stored business card: the text recognized from the
// upload and the canonical PNG rendition of the image. Image is empty on
// cards returned by List; it is loaded by GetByID only.
type Card struct {
	ID            int64
	ExtractedText string
	Image         []byte
}

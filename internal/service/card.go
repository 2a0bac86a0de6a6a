package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
	"github.com/Harish050696/cardvault/internal/ocr"
)

// Cards turns uploaded images into stored business-card records.
type Cards struct {
	cardStore model.CardStore
	extractor ocr.Extractor
	logger    *logger.Logger
}

func NewCards(cardStore model.CardStore, extractor ocr.Extractor, logger *logger.Logger) *Cards {
	return &Cards{
		cardStore: cardStore,
		extractor: extractor,
		logger:    logger,
	}
}

// Save runs text extraction over the upload and stores the recognized text
// together with the normalized image. An upload whose extracted text exactly
// matches an existing card is rejected with model.ErrDuplicateCard and
// nothing is written. The duplicate check is exact string equality.
func (s *Cards) Save(ctx context.Context, image []byte) (model.Card, error) {
	text, normalized, err := s.extractor.Extract(ctx, image)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to extract text: %w", err)
	}

	existing, err := s.cardStore.GetByText(ctx, text)
	if err == nil {
		s.logger.Info("Cards service: duplicate upload rejected", "card_id", existing.ID)
		return model.Card{}, model.ErrDuplicateCard
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Card{}, fmt.Errorf("failed to check for duplicate: %w", err)
	}

	card, err := s.cardStore.Create(ctx, model.Card{
		ExtractedText: text,
		Image:         normalized,
	})
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Info("Cards service: card stored", "card_id", card.ID)
	return card, nil
}

// List returns every stored card without image payloads.
func (s *Cards) List(ctx context.Context) ([]model.Card, error) {
	cards, err := s.cardStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// Get returns one card including its image bytes.
func (s *Cards) Get(ctx context.Context, id int64) (model.Card, error) {
	card, err := s.cardStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

// Delete removes a card. Deleting an id that is not stored is a no-op.
func (s *Cards) Delete(ctx context.Context, id int64) error {
	if err := s.cardStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.logger.Info("Cards service: card deleted", "card_id", id)
	return nil
}

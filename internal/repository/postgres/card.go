package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Harish050696/cardvault/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

type CardRepository struct {
	db *Connection
}

func NewCardRepository(db *Connection) *CardRepository {
	return &CardRepository{
		db: db,
	}
}

func (r *CardRepository) GetByText(ctx context.Context, text string) (model.Card, error) {
	var card model.Card
	query := `SELECT id, extracted_text, image FROM business_cards.cards WHERE extracted_text = $1`

	err := r.db.QueryRowContext(ctx, query, text).Scan(&card.ID, &card.ExtractedText, &card.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by text: %w", err)
	}

	return card, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (model.Card, error) {
	var card model.Card
	query := `SELECT id, extracted_text, image FROM business_cards.cards WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&card.ID, &card.ExtractedText, &card.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}

	return card, nil
}

// List returns id and extracted text for every stored card. The image column
// is skipped here; card images are fetched individually via GetByID. No
// ordering is imposed.
func (r *CardRepository) List(ctx context.Context) ([]model.Card, error) {
	query := `SELECT id, extracted_text FROM business_cards.cards`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		if err := rows.Scan(&card.ID, &card.ExtractedText); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) Create(ctx context.Context, card model.Card) (model.Card, error) {
	query := `INSERT INTO business_cards.cards (extracted_text, image)
			  VALUES ($1, $2)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query, card.ExtractedText, card.Image).Scan(&card.ID)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return card, nil
}

// Delete removes the card with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM business_cards.cards WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}

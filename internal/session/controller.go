package session

import (
	"context"

	"github.com/Harish050696/cardvault/internal/model"
)

// State identifies where an interactive session is in its login lifecycle.
type State int

const (
	// LoggedOut is the initial state. Only Login is permitted.
	LoggedOut State = iota
	// LoggedIn permits every card operation.
	LoggedIn
)

// AuthService verifies credentials and returns the user's display name.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// CardService manages stored business cards.
type CardService interface {
	Save(ctx context.Context, image []byte) (model.Card, error)
	List(ctx context.Context) ([]model.Card, error)
	Get(ctx context.Context, id int64) (model.Card, error)
	Delete(ctx context.Context, id int64) error
}

// Controller drives one interactive session: a two-state machine between
// LoggedOut and LoggedIn that gates every card operation behind a successful
// login. It also remembers which card the user currently has selected; that
// selection is display state only and dies with the session.
//
// A Controller belongs to exactly one interaction and is not safe for
// concurrent use.
type Controller struct {
	auth  AuthService
	cards CardService

	state        State
	displayName  string
	selectedID   int64
	hasSelection bool
}

// NewController creates a logged-out controller.
func NewController(auth AuthService, cards CardService) *Controller {
	return &Controller{
		auth:  auth,
		cards: cards,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// DisplayName returns the logged-in user's display name, empty when logged
// out.
func (c *Controller) DisplayName() string {
	return c.displayName
}

// Login verifies the credentials. On success the session transitions to
// LoggedIn and the display name is returned; on failure the session stays
// exactly where it was and model.ErrInvalidCredentials is returned.
func (c *Controller) Login(ctx context.Context, username, password string) (string, error) {
	name, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	c.state = LoggedIn
	c.displayName = name
	return name, nil
}

// Logout unconditionally returns the session to LoggedOut, discarding the
// display name and any card selection.
func (c *Controller) Logout() {
	c.state = LoggedOut
	c.displayName = ""
	c.clearSelection()
}

// HandleUpload extracts text from the uploaded image and stores the result.
// Rejected with model.ErrDuplicateCard when the text is already stored.
func (c *Controller) HandleUpload(ctx context.Context, image []byte) (model.Card, error) {
	if err := c.requireLogin(); err != nil {
		return model.Card{}, err
	}

	return c.cards.Save(ctx, image)
}

// Cards lists every stored card.
func (c *Controller) Cards(ctx context.Context) ([]model.Card, error) {
	if err := c.requireLogin(); err != nil {
		return nil, err
	}

	return c.cards.List(ctx)
}

// Card fetches one card including its image bytes.
func (c *Controller) Card(ctx context.Context, id int64) (model.Card, error) {
	if err := c.requireLogin(); err != nil {
		return model.Card{}, err
	}

	return c.cards.Get(ctx, id)
}

// SelectCard remembers the given card as the session's current selection
// after verifying it exists.
func (c *Controller) SelectCard(ctx context.Context, id int64) error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	if _, err := c.cards.Get(ctx, id); err != nil {
		return err
	}

	c.selectedID = id
	c.hasSelection = true
	return nil
}

// SelectedCard returns the currently selected card id, if any.
func (c *Controller) SelectedCard() (int64, bool) {
	return c.selectedID, c.hasSelection
}

// DeleteCard removes a card. Deleting an absent id is a no-op. When the
// deleted id is the current selection, the selection is cleared.
func (c *Controller) DeleteCard(ctx context.Context, id int64) error {
	if err := c.requireLogin(); err != nil {
		return err
	}

	if err := c.cards.Delete(ctx, id); err != nil {
		return err
	}

	if c.hasSelection && c.selectedID == id {
		c.clearSelection()
	}
	return nil
}

func (c *Controller) requireLogin() error {
	if c.state != LoggedIn {
		return model.ErrNotAuthenticated
	}
	return nil
}

func (c *Controller) clearSelection() {
	c.selectedID = 0
	c.hasSelection = false
}

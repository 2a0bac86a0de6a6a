package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harish050696/cardvault/internal/model"
)

type fakeAuth struct {
	displayName string
	err         error
	calls       int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.displayName, nil
}

type fakeCards struct {
	cards  map[int64]model.Card
	nextID int64

	saveErr error
}

func newFakeCards() *fakeCards {
	return &fakeCards{cards: map[int64]model.Card{}, nextID: 1}
}

func (f *fakeCards) Save(_ context.Context, image []byte) (model.Card, error) {
	if f.saveErr != nil {
		return model.Card{}, f.saveErr
	}
	card := model.Card{ID: f.nextID, ExtractedText: string(image), Image: image}
	f.cards[card.ID] = card
	f.nextID++
	return card, nil
}

func (f *fakeCards) List(_ context.Context) ([]model.Card, error) {
	out := make([]model.Card, 0, len(f.cards))
	for _, card := range f.cards {
		out = append(out, card)
	}
	return out, nil
}

func (f *fakeCards) Get(_ context.Context, id int64) (model.Card, error) {
	card, ok := f.cards[id]
	if !ok {
		return model.Card{}, model.ErrNotFound
	}
	return card, nil
}

func (f *fakeCards) Delete(_ context.Context, id int64) error {
	delete(f.cards, id)
	return nil
}

func loggedInController(t *testing.T, cards CardService) *Controller {
	t.Helper()
	c := NewController(&fakeAuth{displayName: "Harish"}, cards)
	_, err := c.Login(context.Background(), "hari", "abc123")
	require.NoError(t, err)
	return c
}

func TestController_InitialState(t *testing.T) {
	c := NewController(&fakeAuth{}, newFakeCards())

	assert.Equal(t, LoggedOut, c.State())
	assert.Empty(t, c.DisplayName())
	_, selected := c.SelectedCard()
	assert.False(t, selected)
}

func TestController_Login_Success(t *testing.T) {
	c := NewController(&fakeAuth{displayName: "Harish"}, newFakeCards())

	name, err := c.Login(context.Background(), "hari", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Harish", name)
	assert.Equal(t, LoggedIn, c.State())
	assert.Equal(t, "Harish", c.DisplayName())
}

func TestController_Login_Failure_StaysLoggedOut(t *testing.T) {
	c := NewController(&fakeAuth{err: model.ErrInvalidCredentials}, newFakeCards())

	_, err := c.Login(context.Background(), "hari", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Equal(t, LoggedOut, c.State())
	assert.Empty(t, c.DisplayName())
}

func TestController_GuardsWhileLoggedOut(t *testing.T) {
	ctx := context.Background()
	c := NewController(&fakeAuth{}, newFakeCards())

	_, err := c.HandleUpload(ctx, []byte("img"))
	require.ErrorIs(t, err, model.ErrNotAuthenticated)

	_, err = c.Cards(ctx)
	require.ErrorIs(t, err, model.ErrNotAuthenticated)

	_, err = c.Card(ctx, 1)
	require.ErrorIs(t, err, model.ErrNotAuthenticated)

	require.ErrorIs(t, c.SelectCard(ctx, 1), model.ErrNotAuthenticated)
	require.ErrorIs(t, c.DeleteCard(ctx, 1), model.ErrNotAuthenticated)
}

func TestController_Logout_ResetsEverything(t *testing.T) {
	ctx := context.Background()
	cards := newFakeCards()
	c := loggedInController(t, cards)

	card, err := c.HandleUpload(ctx, []byte("ACME"))
	require.NoError(t, err)
	require.NoError(t, c.SelectCard(ctx, card.ID))

	c.Logout()

	assert.Equal(t, LoggedOut, c.State())
	assert.Empty(t, c.DisplayName())
	_, selected := c.SelectedCard()
	assert.False(t, selected)

	// operations are guarded again after logout
	_, err = c.Cards(ctx)
	require.ErrorIs(t, err, model.ErrNotAuthenticated)
}

func TestController_HandleUpload_PropagatesDuplicate(t *testing.T) {
	ctx := context.Background()
	cards := newFakeCards()
	cards.saveErr = model.ErrDuplicateCard
	c := loggedInController(t, cards)

	_, err := c.HandleUpload(ctx, []byte("ACME"))
	require.ErrorIs(t, err, model.ErrDuplicateCard)
	// a rejected upload does not disturb the session
	assert.Equal(t, LoggedIn, c.State())
}

func TestController_SelectCard(t *testing.T) {
	ctx := context.Background()
	cards := newFakeCards()
	c := loggedInController(t, cards)

	card, err := c.HandleUpload(ctx, []byte("ACME"))
	require.NoError(t, err)

	require.NoError(t, c.SelectCard(ctx, card.ID))
	id, selected := c.SelectedCard()
	assert.True(t, selected)
	assert.Equal(t, card.ID, id)
}

func TestController_SelectCard_Missing(t *testing.T) {
	ctx := context.Background()
	c := loggedInController(t, newFakeCards())

	err := c.SelectCard(ctx, 42)
	require.ErrorIs(t, err, model.ErrNotFound)
	_, selected := c.SelectedCard()
	assert.False(t, selected)
}

func TestController_DeleteCard_ClearsMatchingSelection(t *testing.T) {
	ctx := context.Background()
	cards := newFakeCards()
	c := loggedInController(t, cards)

	first, err := c.HandleUpload(ctx, []byte("first"))
	require.NoError(t, err)
	second, err := c.HandleUpload(ctx, []byte("second"))
	require.NoError(t, err)

	require.NoError(t, c.SelectCard(ctx, first.ID))

	// deleting an unrelated card keeps the selection
	require.NoError(t, c.DeleteCard(ctx, second.ID))
	id, selected := c.SelectedCard()
	assert.True(t, selected)
	assert.Equal(t, first.ID, id)

	// deleting the selected card clears it
	require.NoError(t, c.DeleteCard(ctx, first.ID))
	_, selected = c.SelectedCard()
	assert.False(t, selected)
}

func TestController_DeleteCard_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	cards := newFakeCards()
	c := loggedInController(t, cards)

	_, err := c.HandleUpload(ctx, []byte("keep me"))
	require.NoError(t, err)

	require.NoError(t, c.DeleteCard(ctx, 42))
	listed, err := c.Cards(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

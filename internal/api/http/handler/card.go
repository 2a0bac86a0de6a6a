package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Harish050696/cardvault/internal/api/http/httpctx"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
	"github.com/Harish050696/cardvault/internal/session"
)

// maxUploadSize bounds a single card image upload.
const maxUploadSize = 10 << 20

// CardResponse is the JSON representation of a stored card. The image bytes
// are served separately by the Image endpoint.
type CardResponse struct {
	ID            int64  `json:"id"`
	ExtractedText string `json:"extracted_text"`
}

// Card handles the business card endpoints.
type Card struct {
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewCard creates a new Card handler.
func NewCard(contextManager *httpctx.Manager, logger *logger.Logger) *Card {
	return &Card{contextManager: contextManager, logger: logger}
}

// Upload accepts a multipart image, extracts its text and stores the card.
func (h *Card) Upload(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file")
		return
	}

	card, err := controller.HandleUpload(r.Context(), image)
	if err != nil {
		h.logger.Info("card upload rejected", "error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("card stored", "card_id", card.ID)
	writeJSON(w, http.StatusCreated, CardResponse{ID: card.ID, ExtractedText: card.ExtractedText})
}

// List returns every stored card without image bytes.
func (h *Card) List(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	cards, err := controller.Cards(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	response := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, CardResponse{ID: card.ID, ExtractedText: card.ExtractedText})
	}

	writeJSON(w, http.StatusOK, response)
}

// Get returns one card's extracted text.
func (h *Card) Get(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	id, ok := cardID(w, r)
	if !ok {
		return
	}

	card, err := controller.Card(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CardResponse{ID: card.ID, ExtractedText: card.ExtractedText})
}

// Image serves the stored card image as a PNG download.
func (h *Card) Image(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	id, ok := cardID(w, r)
	if !ok {
		return
	}

	card, err := controller.Card(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=business_card_%d.png", card.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(card.Image)
}

// Select marks the card as the session's current selection.
func (h *Card) Select(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	id, ok := cardID(w, r)
	if !ok {
		return
	}

	if err := controller.SelectCard(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the card. Deleting an absent card still returns 204.
func (h *Card) Delete(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(w, r)
	if !ok {
		return
	}

	id, ok := cardID(w, r)
	if !ok {
		return
	}

	if err := controller.DeleteCard(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Card) controller(w http.ResponseWriter, r *http.Request) (*session.Controller, bool) {
	controller, ok := h.contextManager.GetControllerFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrNotAuthenticated)
		return nil, false
	}
	return controller, true
}

func cardID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card id")
		return 0, false
	}
	return id, true
}

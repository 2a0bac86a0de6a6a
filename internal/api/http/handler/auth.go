package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Harish050696/cardvault/internal/api/http/httpctx"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
	"github.com/Harish050696/cardvault/internal/session"
)

// SessionManager creates and removes live sessions.
type SessionManager interface {
	Create() (uuid.UUID, *session.Controller)
	Remove(id uuid.UUID)
}

// LoginRequest is the JSON body of a login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the user's display name.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Auth handles login and logout endpoints.
type Auth struct {
	sessions       SessionManager
	tokens         model.TokenManager
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(sessions SessionManager, tokens model.TokenManager, contextManager *httpctx.Manager, logger *logger.Logger) *Auth {
	return &Auth{
		sessions:       sessions,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Login verifies credentials, opens a session and returns its bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}

	sessionID, controller := h.sessions.Create()

	name, err := controller.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.sessions.Remove(sessionID)
		h.logger.Info("login failed", "username", req.Username)
		handleError(w, err)
		return
	}

	tokenString, err := h.tokens.GenerateSessionToken(sessionID)
	if err != nil {
		h.sessions.Remove(sessionID)
		h.logger.Error("failed to issue session token", "error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("login succeeded", "username", req.Username)
	writeJSON(w, http.StatusOK, LoginResponse{Token: tokenString, Name: name})
}

// Logout closes the session. The bearer token stops working immediately.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.contextManager.GetControllerFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrNotAuthenticated)
		return
	}

	controller.Logout()

	if sessionID, ok := h.contextManager.GetSessionIDFromContext(r.Context()); ok {
		h.sessions.Remove(sessionID)
	}

	w.WriteHeader(http.StatusNoContent)
}

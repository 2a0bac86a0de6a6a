package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Harish050696/cardvault/internal/api/http/httpctx"
	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/session"
)

// TokenParser resolves session IDs from bearer tokens.
type TokenParser interface {
	ParseSessionToken(tokenString string) (uuid.UUID, error)
}

// SessionRegistry resolves session IDs to live controllers.
type SessionRegistry interface {
	Get(id uuid.UUID) (*session.Controller, bool)
}

// Authenticate validates bearer tokens and injects the session into context.
type Authenticate struct {
	tokens         TokenParser
	sessions       SessionRegistry
	contextManager *httpctx.Manager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, sessions SessionRegistry, contextManager *httpctx.Manager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokens:         tokens,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, validates the token and resolves the
// live session. Requests without a valid, registered session are rejected with
// 401 before reaching any handler.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			m.unauthorized(w, "missing authorization token")
			return
		}

		sessionID, err := m.tokens.ParseSessionToken(tokenString)
		if err != nil {
			m.logger.Debug("rejected session token", "error", err.Error())
			m.unauthorized(w, "invalid authorization token")
			return
		}

		controller, ok := m.sessions.Get(sessionID)
		if !ok {
			// valid signature but the session was logged out or the
			// server restarted
			m.unauthorized(w, "session expired")
			return
		}

		ctx := m.contextManager.SetSessionToContext(r.Context(), sessionID, controller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

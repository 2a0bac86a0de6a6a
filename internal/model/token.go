package model

import "github.com/google/uuid"

// TokenManager generates and validates bearer tokens that identify a live
// interactive session.
type TokenManager interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, error)
	ParseSessionToken(token string) (uuid.UUID, error)
}

package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	id := uuid.New()

	tokenString, err := j.GenerateSessionToken(id)
	require.NoError(t, err)
	got, err := j.ParseSessionToken(tokenString)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret").GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("other").ParseSessionToken(tokenString)
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret").ParseSessionToken("not.a.token")
	require.Error(t, err)
}

func TestJWT_MissingSessionID(t *testing.T) {
	// a token signed with the right key but no session claim is rejected
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{})
	tokenString, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseSessionToken(tokenString)
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: uuid.New()})
	tokenString, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseSessionToken(tokenString)
	require.Error(t, err)
}

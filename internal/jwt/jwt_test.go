package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-be/internal/common"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	tok, err := svc.GenerateToken(42, "sad@sad.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "sad@sad.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("secret", -time.Second)

	tok, err := svc.GenerateToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, common.ErrorInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWTService("right-secret", time.Hour).GenerateToken(2, "a@b.c")
	require.NoError(t, err)

	_, err = NewJWTService("wrong-secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, common.ErrorInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("k", time.Hour).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, common.ErrorInvalidToken)
}

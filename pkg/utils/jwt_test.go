package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	ConfigureJWT("test-secret", time.Minute)
	id := uuid.New()

	token, err := CreateToken(id, "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	ConfigureJWT("another-secret", 0)
	_, err = ValidateToken(token)
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NoError(t, ComparePasswords(hash, "s3cret!"))
	assert.Error(t, ComparePasswords(hash, "wrong"))

	tok, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, tok, 32)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}

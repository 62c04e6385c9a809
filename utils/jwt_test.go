// File: utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractIDFromToken(t *testing.T) {
	token, err := GenerateToken("admin-1", "admin@pitchside.example", time.Hour)
	require.NoError(t, err)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", sub)
}

func TestExtractIDFromTokenRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken("admin-1", "admin@pitchside.example", time.Hour)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(token + "x")
	assert.Error(t, err, "a tampered signature must not verify")
}

func TestExtractIDFromTokenExpired(t *testing.T) {
	token, err := GenerateToken("admin-1", "admin@pitchside.example", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

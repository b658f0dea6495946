package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	subject := TokenSubject{UserID: 7, Email: "ada@example.com", Role: "admin"}

	pair, err := GenerateTokenPair(subject, "secret", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(pair.Access, "secret", AccessToken)
	require.NoError(t, err)
	got, err := SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, subject, got)

	_, err = ParseToken(pair.Refresh, "secret", RefreshToken)
	assert.NoError(t, err)
}

func TestParseTokenRejects(t *testing.T) {
	subject := TokenSubject{UserID: 7, Email: "ada@example.com", Role: "user"}
	pair, err := GenerateTokenPair(subject, "secret", time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(pair.Refresh, "secret", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(pair.Access, "other-secret", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateAccessToken(subject, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("garbage", "secret", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.NoError(t, ComparePasswords(hash, "password123"))
	assert.Error(t, ComparePasswords(hash, "password124"))
}

func TestProductImageKey(t *testing.T) {
	first := ProductImageKey(3, "photo.JPG")
	second := ProductImageKey(3, "photo.JPG")

	assert.Regexp(t, `^products/3/\d{14}-[0-9a-f-]{36}\.JPG$`, first)
	assert.NotEqual(t, first, second)
}

func TestProfilePhotoKey(t *testing.T) {
	assert.Regexp(t, `^profiles/12/\d{14}-[0-9a-f-]{36}\.png$`, ProfilePhotoKey(12, "me.png"))
}

package util

import (
	"movie_discovery/configs"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJwtConfigs(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
	configs.LoadEnvVariables()
}

func TestCreateTokens(t *testing.T) {
	setupJwtConfigs(t)

	tokens, err := CreateTokens(42, "testUser")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Greater(t, tokens.ExpiresAt, int64(0))
}

func TestVerifyToken(t *testing.T) {
	setupJwtConfigs(t)

	tokens, err := CreateTokens(42, "testUser")
	require.NoError(t, err)

	token, claims, err := VerifyToken(tokens.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, token)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserId)
	assert.Equal(t, "testUser", claims.Username)
	assert.False(t, claims.IsRefresh)

	// refresh token is signed with a different secret
	_, _, err = VerifyToken(tokens.RefreshToken)
	assert.Error(t, err)
}

func TestVerifyRefreshToken(t *testing.T) {
	setupJwtConfigs(t)

	tokens, err := CreateTokens(42, "testUser")
	require.NoError(t, err)

	token, claims, err := VerifyRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, token)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserId)
	assert.True(t, claims.IsRefresh)

	_, _, err = VerifyRefreshToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestVerifyTokenInvalid(t *testing.T) {
	setupJwtConfigs(t)

	_, _, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	setupJwtConfigs(t)

	now := time.Now()
	claims := MyJwtClaims{
		UserId:      42,
		Username:    "testUser",
		GeneratedAt: now.Add(-2 * time.Hour).UnixMilli(),
		ExpiresAt:   now.Add(-1 * time.Hour).UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).
		SignedString([]byte("test-access-secret"))
	require.NoError(t, err)

	_, _, err = VerifyToken(expiredToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyTokenRejectsWrongSigningMethod(t *testing.T) {
	setupJwtConfigs(t)

	claims := MyJwtClaims{
		UserId:   42,
		Username: "testUser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = VerifyToken(noneToken)
	assert.Error(t, err)
	_, _, err = VerifyRefreshToken(noneToken)
	assert.Error(t, err)
}

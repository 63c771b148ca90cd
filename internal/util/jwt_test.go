package util

import (
	"skill_manager_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("ops", model.Admin, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Equal(t, model.Admin, claims.Role)

	_, err = GenerateJWT("ops", model.Admin, "", time.Hour)
	assert.Error(t, err)
}

func TestJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("ops", model.Admin, "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("ops", model.Admin, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: model.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseJWT(foreign, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	// 非 HS256 签名一律拒绝
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: model.Admin}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseJWT(none, "secret")
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 100, QueryInt("", 100))
	assert.Equal(t, 5, QueryInt("5", 100))
	assert.Equal(t, 100, QueryInt("-1", 100))
	assert.Equal(t, 100, QueryInt("abc", 100))
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint("x"))
}

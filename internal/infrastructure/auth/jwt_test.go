package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "iuran-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testJWTService()
	assocID, userID, householdID := uuid.New(), uuid.New(), uuid.New()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		AssociationID: assocID,
		UserID:        userID,
		Email:         "warga@example.com",
		Role:          "warga",
		HouseholdID:   &householdID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, assocID.String(), claims.AssociationID)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "warga@example.com", claims.Email)
	assert.Equal(t, "warga", claims.Role)
	assert.Equal(t, householdID.String(), claims.HouseholdID)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_SuperAdminHasNoAssociation(t *testing.T) {
	service := testJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "root@example.com",
		Role:   "super_admin",
	})
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, claims.AssociationID)
	assert.Empty(t, claims.HouseholdID)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	service := testJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "a@b.com",
		Role:   "admin",
	})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = service.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "iuran-test",
	})

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "a@b.com",
		Role:   "admin",
	})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := testJWTService()

	_, err := service.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMemoryTokenBlacklist(t *testing.T) {
	blacklist := NewMemoryTokenBlacklist()
	ctx := context.Background()

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))
	revoked, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Expired TTLs are not stored.
	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-2", -time.Second))
	revoked, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

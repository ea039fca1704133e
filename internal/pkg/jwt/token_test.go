package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "ridepool-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name     string
		userID   uuid.UUID
		isDriver bool
	}{
		{
			name:     "Rider token",
			userID:   uuid.New(),
			isDriver: false,
		},
		{
			name:     "Driver token",
			userID:   uuid.New(),
			isDriver: true,
		},
		{
			name:     "Zero UUID still generates",
			userID:   uuid.UUID{},
			isDriver: false,
		},
	}

	config := getTestConfig()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.isDriver, config)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(config.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, tt.userID.String(), claims["user_id"])
			assert.Equal(t, tt.isDriver, claims["is_driver"])
			assert.Equal(t, config.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	userID := uuid.New()

	validToken, _, err := GenerateToken(userID, true, config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.tokenString, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)

				claimsMap := *claims
				assert.Equal(t, userID.String(), claimsMap["user_id"])
				assert.Equal(t, true, claimsMap["is_driver"])
				assert.Equal(t, config.JWT.Issuer, claimsMap["iss"])
			}
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = -1 // expired a minute ago

	tokenString, _, err := GenerateToken(uuid.New(), false, config)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, config.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

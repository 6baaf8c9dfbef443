package auth

import (
	"testing"
	"time"

	"rentflow/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "rentflow-test"
	cfg.SecretKey.Access = secret

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	s, ok := svc.(*jwtService)
	require.True(t, ok)

	return s
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()
	buildingID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, []string{"staff"}, []uuid.UUID{buildingID})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"staff"}, claims.Roles)
	assert.Equal(t, []uuid.UUID{buildingID}, claims.BuildingIDs)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "rentflow-test", claims.Issuer)
}

func TestJWTService_ValidateToken_Rejections(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	expired := newTestJWTService(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * accessTTL) }
	expiredToken, err := expired.GenerateAccessToken(userID, []string{"tenant"}, nil)
	require.NoError(t, err)

	otherSecret, err := NewJWTService(testConfig("another_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	forgedToken, err := otherSecret.GenerateAccessToken(userID, []string{"admin"}, nil)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: forgedToken},
		{name: "unsigned", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_GenerateAccessToken_RequiresUser(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.GenerateAccessToken(uuid.Nil, nil, nil)
	assert.Error(t, err)
}

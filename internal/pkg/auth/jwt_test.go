package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/melodia/internal/app/models"
)

func testService(accessExp, refreshExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     "melodia.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       7,
		Email:    "teacher@melodia.local",
		RoleType: models.RoleTeacher,
	}
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)
	assert.Equal(t, 86400, refreshExpiresIn)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "teacher@melodia.local", claims.Email)
	assert.Equal(t, string(models.RoleTeacher), claims.RoleType)
	assert.Equal(t, TokenUseAccess, claims.TokenUse)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenUseRefresh, refreshClaims.TokenUse)
}

func TestValidate_RejectsWrongTokenUse(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	access, refresh, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenUse)

	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenUse)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	svc := testService(-time.Minute, 24*time.Hour)

	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_RejectsForeignSignature(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "melodia.test",
	})

	access, _, _, _, err := other.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestValidate_RejectsEmptyToken(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	_, err := svc.ValidateAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "with bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "without prefix", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3r-Secret!")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3r-Secret!", hash)

	assert.True(t, CheckPassword(hash, "Sup3r-Secret!"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "Sup3r-Secret!"))
}

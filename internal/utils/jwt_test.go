package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-quiz-test"
	testSignKey = "secret-key"
)

func TestGenerateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, "Bearer "+token.SignedString, token.AuthorizationHeader())
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, key: "key"},
		{name: "zero duration", issuer: "iss", duration: 0, key: "key"},
		{name: "empty key", issuer: "iss", duration: time.Hour, key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, errInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, issued.SignedString, parsed.String())
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testIssuer, 1, -time.Second, testSignKey)
	require.NoError(t, err)
	otherIssuer, err := GenerateJWTToken("someone-else", 1, time.Hour, testSignKey)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "1",
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	notAUserID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		key     string
		wantErr error
	}{
		{name: "wrong key", token: valid.SignedString, key: "wrong-key", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "expired", token: expired.SignedString, key: testSignKey, wantErr: jwt.ErrTokenExpired},
		{name: "wrong issuer", token: otherIssuer.SignedString, key: testSignKey, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "no expiry", token: noExpiry, key: testSignKey, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "wrong algorithm", token: hs512, key: testSignKey, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "malformed", token: "not.a.token", key: testSignKey, wantErr: jwt.ErrTokenMalformed},
		{name: "subject is not a user id", token: notAUserID, key: testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, testIssuer)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidAuthorizationValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

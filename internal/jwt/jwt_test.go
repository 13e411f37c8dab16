package jwt

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.User)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)
}

func TestJWT_NoExpiration(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(0))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "user")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "user")
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_TamperedToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "user")
	require.NoError(t, err)

	// flip the first character of the payload segment
	dot := strings.Index(token, ".")
	require.Greater(t, dot, 0)
	b := []byte(token)
	if b[dot+1] == 'e' {
		b[dot+1] = 'f'
	} else {
		b[dot+1] = 'e'
	}

	assert.Error(t, j.Validate(ctx, string(b)))
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "")
	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Nil(t, claims)
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, uuid.New(), "user")
	require.NoError(t, err)

	assert.Error(t, j2.Validate(ctx, token))
}

func TestJWT_Validate_WrongMethod(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims := Claims{User: uuid.NewString()}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_Validate_NonUUIDUser(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{User: "not-a-uuid"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_Decode(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	token, err := New(WithSecretKey("other")).Generate(ctx, userID, "user")
	require.NoError(t, err)

	// Decode ignores the signature
	payload, err := New(WithSecretKey("secret")).Decode(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), payload["user"])
	assert.Equal(t, "user", payload["role"])

	_, err = New().Decode(ctx, "garbage")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        *http.Cookie
		expectedToken string
		expectError   bool
	}{
		{"ValidCookie", &http.Cookie{Name: CookieName, Value: "mytoken123"}, "mytoken123", false},
		{"NoCookie", nil, "", true},
		{"EmptyCookie", &http.Cookie{Name: CookieName, Value: ""}, "", true},
		{"OtherCookie", &http.Cookie{Name: "session", Value: "mytoken123"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

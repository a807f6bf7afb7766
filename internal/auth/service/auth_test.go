package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	autherrors "travelease/internal/auth/errors"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/logger"
	"travelease/pkg/model"
)

type mockTokenSource struct {
	acquireFunc func(ctx context.Context) (string, error)
}

func (m *mockTokenSource) AcquireToken(ctx context.Context) (string, error) {
	if m.acquireFunc != nil {
		return m.acquireFunc(ctx)
	}
	return "provider-token", nil
}

func newTestService(tokens amadeus.TokenSource) *authService {
	cfg := &config.Config{
		Log:       logger.Discard(),
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	svc := NewAuthService(tokens, cfg).(*authService)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestSignup_EchoesNormalizedProfile(t *testing.T) {
	svc := newTestService(&mockTokenSource{})

	resp, err := svc.Signup(context.Background(), &model.SignupRequest{
		FirstName:   "  Ana  ",
		LastName:    "García   López",
		Email:       " Ana@Example.COM ",
		Password:    "secret",
		PhoneNumber: "612 345 678",
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, resp.Status)
	assert.Equal(t, autherrors.MsgSignupSucceeded, resp.Message)
	assert.Equal(t, "Ana", resp.User.FirstName)
	assert.Equal(t, "García López", resp.User.LastName)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, "+34612345678", resp.User.PhoneNumber)
	assert.Empty(t, resp.Token)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := newTestService(&mockTokenSource{})

	tests := []struct {
		name string
		req  model.SignupRequest
	}{
		{"empty", model.SignupRequest{}},
		{"missing password", model.SignupRequest{FirstName: "A", LastName: "B", Email: "a@b.c"}},
		{"blank email", model.SignupRequest{FirstName: "A", LastName: "B", Email: "   ", Password: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), &tt.req)
			require.Error(t, err)

			appErr := apperrors.AsAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
			assert.Equal(t, autherrors.ErrMissingSignupFields.Error(), appErr.Message)
		})
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	svc := newTestService(&mockTokenSource{})
	svc.now = time.Now

	resp, err := svc.Login(context.Background(), &model.LoginRequest{Email: "Traveler@Example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, autherrors.MsgLoginSucceeded, resp.Message)
	assert.Equal(t, mockUserID, resp.User.ID)
	assert.Equal(t, "Test", resp.User.FirstName)
	assert.Equal(t, "User", resp.User.LastName)
	assert.Equal(t, "traveler@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, mockUserID, claims.Subject)
	assert.Equal(t, "traveler@example.com", claims.Email)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_TokenSignedWithConfiguredSecret(t *testing.T) {
	svc := newTestService(&mockTokenSource{})
	svc.now = time.Now

	resp, err := svc.Login(context.Background(), &model.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, mockUserID, claims["sub"])

	_, err = jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc := newTestService(&mockTokenSource{})

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "a@b.c"})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, autherrors.ErrMissingCredentials.Error(), appErr.Message)
}

func TestLogin_TokenExpiresAfterTTL(t *testing.T) {
	svc := newTestService(&mockTokenSource{})
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	resp, err := svc.Login(context.Background(), &model.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(resp.Token, &SessionClaims{}, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	var validationErr *jwt.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotZero(t, validationErr.Errors&jwt.ValidationErrorExpired)
}

func TestProviderToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := newTestService(&mockTokenSource{})

		resp, err := svc.ProviderToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.TokenResponse{Status: model.StatusSuccess, Token: "provider-token"}, resp)
	})

	t.Run("exchange failure", func(t *testing.T) {
		svc := newTestService(&mockTokenSource{
			acquireFunc: func(context.Context) (string, error) {
				return "", errors.Join(amadeus.ErrUpstreamAuth, errors.New("401"))
			},
		})

		_, err := svc.ProviderToken(context.Background())
		require.Error(t, err)

		appErr := apperrors.AsAppError(err)
		assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode())
		assert.Equal(t, autherrors.MsgTokenFailed, appErr.Message)
		assert.ErrorIs(t, err, amadeus.ErrUpstreamAuth)
	})
}

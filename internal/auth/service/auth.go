// Package service implements the mocked account endpoints. Nothing is
// persisted: signup echoes the profile and login accepts any credentials.
package service

import (
	"context"
	"time"

	autherrors "travelease/internal/auth/errors"
	"travelease/pkg/amadeus"
	"travelease/pkg/config"
	apperrors "travelease/pkg/errors"
	"travelease/pkg/model"
	"travelease/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
)

const (
	mockUserID        = "user123"
	mockUserFirstName = "Test"
	mockUserLastName  = "User"
	tokenIssuer       = "travelease"
)

// SessionClaims are carried by the login token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (model.AuthResponse, error)
	ProviderToken(ctx context.Context) (model.TokenResponse, error)
}

type authService struct {
	tokens   amadeus.TokenSource
	validate *validator.Validate
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(tokens amadeus.TokenSource, cfg *config.Config) AuthService {
	return &authService{
		tokens:   tokens,
		validate: validator.New(),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *authService) Signup(_ context.Context, req *model.SignupRequest) (model.AuthResponse, error) {
	req.FirstName = sanitizer.NormalizeName(req.FirstName)
	req.LastName = sanitizer.NormalizeName(req.LastName)
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.PhoneNumber = sanitizer.NormalizePhone(req.PhoneNumber)

	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Signup validation failed", "error", err)
		return model.AuthResponse{}, apperrors.Validation(autherrors.ErrMissingSignupFields.Error(), nil)
	}

	s.cfg.Log.Info("Mock user registered", "email", req.Email)

	return model.AuthResponse{
		Status:  model.StatusSuccess,
		Message: autherrors.MsgSignupSucceeded,
		User: model.UserProfile{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		},
	}, nil
}

func (s *authService) Login(_ context.Context, req *model.LoginRequest) (model.AuthResponse, error) {
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.cfg.Log.Warn("Login validation failed", "error", err)
		return model.AuthResponse{}, apperrors.Validation(autherrors.ErrMissingCredentials.Error(), nil)
	}

	token, err := s.sign(req.Email)
	if err != nil {
		s.cfg.Log.Error("Failed to sign session token", "error", err)
		return model.AuthResponse{}, apperrors.Internal(autherrors.MsgLoginFailed, err)
	}

	return model.AuthResponse{
		Status:  model.StatusSuccess,
		Message: autherrors.MsgLoginSucceeded,
		User: model.UserProfile{
			ID:        mockUserID,
			FirstName: mockUserFirstName,
			LastName:  mockUserLastName,
			Email:     req.Email,
		},
		Token: token,
	}, nil
}

// ProviderToken exchanges credentials for a fresh provider token.
func (s *authService) ProviderToken(ctx context.Context) (model.TokenResponse, error) {
	token, err := s.tokens.AcquireToken(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to acquire provider token", "error", err)
		return model.TokenResponse{}, apperrors.UpstreamAuth(autherrors.MsgTokenFailed, err)
	}
	return model.TokenResponse{Status: model.StatusSuccess, Token: token}, nil
}

func (s *authService) sign(email string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   mockUserID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

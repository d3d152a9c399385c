package admin

import (
	"context"
	"crypto/subtle"
	"errors"

	"studioslot/internal/api"
	"studioslot/internal/auth"
)

// Subject is the token subject issued to the single studio administrator.
const Subject = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginDisabled      = errors.New("admin password not configured")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error)
}

type Credentials struct {
	// PasswordHash is a bcrypt hash and wins over Password when both are set.
	PasswordHash  string
	Password      string
	AccessSecret  string
	RefreshSecret string
}

type service struct {
	creds Credentials
}

func NewService(creds Credentials) Service {
	return &service{creds: creds}
}

func (s *service) checkPassword(password string) error {
	switch {
	case s.creds.PasswordHash != "":
		if !auth.CheckPassword(s.creds.PasswordHash, password) {
			return ErrInvalidCredentials
		}
	case s.creds.Password != "":
		if subtle.ConstantTimeCompare([]byte(s.creds.Password), []byte(password)) != 1 {
			return ErrInvalidCredentials
		}
	default:
		return ErrLoginDisabled
	}
	return nil
}

func (s *service) Login(_ context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := s.checkPassword(req.Password); err != nil {
		return nil, api.Wrap(api.KindUnauthorized, "Invalid password", err)
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		Subject,
		auth.RoleAdmin,
		s.creds.AccessSecret,
		s.creds.RefreshSecret,
	)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(auth.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *service) Refresh(_ context.Context, req RefreshRequest) (*TokenResponse, error) {
	accessToken, claims, err := auth.RefreshAccessToken(req.RefreshToken, s.creds.RefreshSecret, s.creds.AccessSecret)
	if err != nil {
		if errors.Is(err, auth.ErrEmptyJWTSecret) {
			return nil, err
		}
		return nil, api.Wrap(api.KindUnauthorized, "Invalid refresh token", err)
	}
	if claims.Role != auth.RoleAdmin {
		return nil, api.Unauthorized("Invalid refresh token")
	}

	return &TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(auth.AccessTokenTTL.Seconds()),
	}, nil
}

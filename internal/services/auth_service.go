// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/shopstream/storefront/internal/config"
	"github.com/shopstream/storefront/internal/session"
	"github.com/shopstream/storefront/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier is the seam between the checkout guard contract
// and whatever actually checks credentials. The storefront ships with
// the dev-mode stub; a real implementation can be substituted without
// touching the checkout machine.
type CredentialVerifier interface {
	Verify(email, password string) error
}

// StubVerifier accepts any non-empty credential pair. It verifies
// nothing and stores nothing.
type StubVerifier struct{}

func (StubVerifier) Verify(email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}
	return nil
}

type AuthService struct {
	verifier CredentialVerifier
	cfg      *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"` // in seconds
}

func NewAuthService(verifier CredentialVerifier, cfg *config.Config) *AuthService {
	return &AuthService{
		verifier: verifier,
		cfg:      cfg,
	}
}

// Login authenticates the session. With the stub verifier any non-empty
// pair succeeds; the display name is derived from the email when the
// user never signed up.
func (s *AuthService) Login(sess *session.Session, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.verifier.Verify(req.Email, req.Password); err != nil {
		return nil, err
	}

	sess.Lock()
	sess.Authenticated = true
	sess.Email = req.Email
	if sess.Name == "" {
		sess.Name = displayNameFromEmail(req.Email)
	}
	name := sess.Name
	sess.Unlock()

	return s.tokenResponse(sess, name, req.Email)
}

func (s *AuthService) Signup(sess *session.Session, req *SignupRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.verifier.Verify(req.Email, req.Password); err != nil {
		return nil, err
	}

	sess.Lock()
	sess.Authenticated = true
	sess.Name = req.Name
	sess.Email = req.Email
	sess.Unlock()

	return s.tokenResponse(sess, req.Name, req.Email)
}

// Logout clears the session's identity. The cart and order list stay;
// only the authenticated flag and display info are session identity.
func (s *AuthService) Logout(sess *session.Session) {
	sess.Lock()
	sess.Authenticated = false
	sess.Name = ""
	sess.Email = ""
	sess.Unlock()
}

func (s *AuthService) tokenResponse(sess *session.Session, name, email string) (*AuthResponse, error) {
	token, err := utils.GenerateSessionToken(sess.ID, name, email, s.cfg.Session.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &AuthResponse{
		Name:      name,
		Email:     email,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.Session.TokenTTL * 3600,
	}, nil
}

func displayNameFromEmail(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sellerscope_backend/internal/models"
	"sellerscope_backend/pkg/utils"
)

// ErrInvalidCredentials is returned when the login does not match the demo account.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DemoRole is the single role the demo session carries.
const DemoRole = "Owner"

// AuthService implements the demo session stub. There is exactly one account;
// this is intentionally not real authentication.
type AuthService interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	demoEmail    string
	demoName     string
	passwordHash []byte
}

// NewAuthService creates the demo auth service. The configured password is
// hashed once at startup so the plaintext never lives past construction.
func NewAuthService(demoEmail, demoName, demoPassword string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	return &authService{
		demoEmail:    strings.ToLower(demoEmail),
		demoName:     demoName,
		passwordHash: hash,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if strings.ToLower(req.Email) != s.demoEmail {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := models.Session{
		UserID:      "demo-user",
		Email:       s.demoEmail,
		DisplayName: s.demoName,
		Role:        DemoRole,
	}

	token, err := utils.GenerateAccessToken(session.UserID, session.Email, session.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &models.LoginResponse{AccessToken: token, User: session}, nil
}

// Package server provides the HTTP REST API for the resume optimizer.
package server

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-optimizer/internal/config"
)

// OperatorService authenticates the single API operator. Credentials are
// provisioned through the environment: AUTH_USERNAME names the operator and
// AUTH_PASSWORD_HASH holds a bcrypt hash of the password. The server never
// stores a plaintext password.
type OperatorService struct {
	username       string
	passwordHash   string
	passwordConfig *config.PasswordConfig
}

// NewOperatorService creates an operator service from environment variables.
func NewOperatorService(passwordConfig *config.PasswordConfig) (*OperatorService, error) {
	username := os.Getenv("AUTH_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("AUTH_USERNAME environment variable is required")
	}

	passwordHash := os.Getenv("AUTH_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, fmt.Errorf("AUTH_PASSWORD_HASH environment variable is required")
	}

	return &OperatorService{
		username:       username,
		passwordHash:   passwordHash,
		passwordConfig: passwordConfig,
	}, nil
}

// Login verifies the supplied credentials and returns the operator name.
func (s *OperatorService) Login(username, password string) (string, error) {
	// Verify the password even on a username mismatch so both failure paths
	// take comparable time.
	passwordOK := s.passwordConfig.VerifyPassword(password, s.passwordHash)
	if username != s.username || !passwordOK {
		return "", &ErrInvalidCredentials{}
	}
	return s.username, nil
}

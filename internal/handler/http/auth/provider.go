package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
)

// Credentials carries a login attempt.
type Credentials struct {
	UserID   string
	Password string
}

// Provider validates login credentials and resolves the authenticated user.
type Provider interface {
	// ValidateCredentials returns nil when the credentials identify a known user.
	ValidateCredentials(ctx context.Context, creds Credentials) error
	// Name returns the provider name for logging.
	Name() string
}

// EnvProvider authenticates a single user configured through environment
// variables (JOURNAL_USER / JOURNAL_USER_PASSWORD). Good enough for a
// personal journal deployment; swap the Provider for anything bigger.
type EnvProvider struct {
	minPasswordLength int
}

// NewEnvProvider creates an environment-backed credential provider.
func NewEnvProvider(minPasswordLength int) *EnvProvider {
	return &EnvProvider{minPasswordLength: minPasswordLength}
}

// ValidateCredentials validates credentials against environment variables.
func (p *EnvProvider) ValidateCredentials(ctx context.Context, creds Credentials) error {
	if creds.UserID == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}

	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}

	wantUser := os.Getenv("JOURNAL_USER")
	wantPass := os.Getenv("JOURNAL_USER_PASSWORD")
	if wantUser == "" || wantPass == "" {
		return fmt.Errorf("server credentials not configured")
	}

	// Constant-time comparison to prevent timing attacks.
	userMatch := subtle.ConstantTimeCompare([]byte(creds.UserID), []byte(wantUser)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(wantPass)) == 1

	if !userMatch || !passMatch {
		return fmt.Errorf("invalid credentials")
	}

	return nil
}

// Name returns the provider name.
func (p *EnvProvider) Name() string {
	return "env"
}

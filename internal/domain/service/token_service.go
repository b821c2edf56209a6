package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the claims carried by a session token.
type SessionClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are minted by the sign-in flow of the session provider; the guide only needs
// to verify them, IssueSessionToken exists for tooling and tests.
type TokenService interface {
	// IssueSessionToken creates a signed session token for the given subject.
	IssueSessionToken(userID, email, name string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// GetSessionDuration returns the configured lifetime of session tokens.
	GetSessionDuration() time.Duration
}

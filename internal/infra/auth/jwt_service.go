// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"localguide/config"
	"localguide/internal/domain/service"
	"localguide/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key shared with the session provider.
	issuer string        // Expected issuer, empty to accept any.
	ttl    time.Duration // Time-to-live for issued session tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	ttl := defaultSessionTTL
	issuer := ""
	if cfg.Session != nil {
		if cfg.Session.TTL > 0 {
			ttl = cfg.Session.TTL
		}
		issuer = cfg.Session.Issuer
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// IssueSessionToken creates a signed session token for the given subject.
func (s *jwtService) IssueSessionToken(userID, email, name string) (string, error) {
	now := time.Now()
	claims := service.SessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry and issuer of a session token.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}

	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(s.secret), nil
	}, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("session token is missing a subject")
	}

	return claims, nil
}

// GetSessionDuration returns the configured duration for session tokens.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.ttl
}

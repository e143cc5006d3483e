// Package session implements the admin login gate: a shared passcode is
// exchanged for a short-lived signed session token. Deliberately minimal; the
// admin surface is single-operator.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	dErrors "summit-connect/pkg/domain-errors"
	"summit-connect/pkg/platform/sentinel"
)

const issuer = "summit-connect"

// Service issues and validates admin session tokens.
type Service struct {
	passcodeHash string
	signingKey   []byte
	ttl          time.Duration
}

func New(passcodeHash, signingKey string, ttl time.Duration) *Service {
	return &Service{
		passcodeHash: passcodeHash,
		signingKey:   []byte(signingKey),
		ttl:          ttl,
	}
}

// HashPasscode creates a bcrypt hash suitable for ADMIN_PASSCODE_HASH.
func HashPasscode(passcode string) (string, error) {
	if passcode == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "passcode cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Login verifies the passcode and returns a signed session token.
func (s *Service) Login(passcode string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passcodeHash), []byte(passcode)); err != nil {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid passcode")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign session token")
	}
	return signed, nil
}

// Validate checks a session token's signature and expiry.
func (s *Service) Validate(tokenString string) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return dErrors.Wrap(sentinel.ErrExpired, dErrors.CodeUnauthorized, "session has expired")
		}
		return dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	if !parsed.Valid {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	return nil
}

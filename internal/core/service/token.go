package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techbridge/events-api/internal/core/domain"
)

// tokenClaims is the claim set carried by every access token. UserID is only
// present on user tokens; admin tokens rely on UserType alone.
type tokenClaims struct {
	UserType domain.PrincipalKind `json:"user_type"`
	UserID   *int64               `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// issueToken mints an HS256-signed token for the given subject. The expiry is
// absolute: issued-at plus ttl.
func issueToken(secret, subject string, kind domain.PrincipalKind, userID *int64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UserType: kind,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseToken verifies signature and expiry and returns the decoded claims.
// Expiry is inclusive: a token presented at exactly its expiry instant is
// already expired.
func parseToken(secret, token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

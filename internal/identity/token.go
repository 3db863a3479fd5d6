package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (p *emailProvider) issueToken(ident *Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: ident.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Verify parses a bearer token and returns the identity it was issued
// for. Signature, algorithm and expiry failures all map to
// ErrInvalidToken; callers do not distinguish.
func (p *emailProvider) Verify(token string) (*Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UID: claims.Subject, Email: claims.Email}, nil
}

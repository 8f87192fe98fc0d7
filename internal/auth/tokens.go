package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for token verification
var (
	// ErrInvalidToken is returned when a token fails parsing or signature verification
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token is syntactically valid but past its expiry
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the JWT claims issued by this service.
// Subject carries the user id as a decimal string.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// UserID parses the subject claim into a numeric user id.
// Returns 0 if the subject is missing or malformed.
func (c *Claims) UserID() int64 {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Provider issues and verifies HS256 bearer tokens for this service.
// It is the only component that holds the signing secret; everything else
// consumes tokens through the middleware.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

// NewProvider creates a token provider with the given signing secret and token lifetime.
func NewProvider(secret []byte, ttl time.Duration) *Provider {
	return &Provider{
		secret: secret,
		ttl:    ttl,
	}
}

// IssueToken creates a signed token for the given user
func (p *Provider) IssueToken(userID int64, role string) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates the signature and expiry of a token and returns its claims
func (p *Provider) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Only HS256 is issued by this service; reject anything else
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

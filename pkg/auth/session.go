package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	sessionIssuer   = "mrgcar-api"
	sessionAudience = "mrgcar-admin"
)

var defaultSessionTTL = 12 * time.Hour

// ErrInvalidSession is returned for tokens that fail verification.
var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims identifies the logged-in admin carried by a token.
type SessionClaims struct {
	AdminID string
	Email   string
	Role    string
}

// Sessions issues and verifies HS256 JWT session tokens for admins.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions builds a session signer from a shared secret.
func NewSessions(secret string, ttl time.Duration) (*Sessions, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Sessions{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given admin.
func (s *Sessions) Issue(claims SessionClaims) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   sessionIssuer,
		"aud":   sessionAudience,
		"sub":   claims.AdminID,
		"email": claims.Email,
		"role":  claims.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the embedded claims.
func (s *Sessions) Verify(tokenString string) (SessionClaims, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithAudience(sessionAudience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil || !parsed.Valid {
		return SessionClaims{}, ErrInvalidSession
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidSession
	}
	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return SessionClaims{}, ErrInvalidSession
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	return SessionClaims{AdminID: sub, Email: email, Role: role}, nil
}

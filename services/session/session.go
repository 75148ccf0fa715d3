package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"institute-backend/constants"
)

// Kind distinguishes the two principal types a session token can carry.
type Kind string

const (
	KindStudent Kind = constants.RoleStudent
	KindAdmin   Kind = constants.RoleAdmin
)

// Identity is the decoded content of a session token.
type Identity struct {
	Kind  Kind
	ID    uint
	Email string
}

func (i Identity) IsAdmin() bool   { return i.Kind == KindAdmin }
func (i Identity) IsStudent() bool { return i.Kind == KindStudent }

type sessionClaims struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and parses signed session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL reports the configured session lifetime, used when setting the
// session cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given identity.
func (m *Manager) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Kind:  string(identity.Kind),
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", identity.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %v", err)
	}
	return signed, nil
}

// Parse verifies the token signature and expiry and returns the
// embedded identity.
func (m *Manager) Parse(tokenString string) (Identity, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("invalid session token: %v", err)
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("invalid session token")
	}

	kind := Kind(claims.Kind)
	if kind != KindStudent && kind != KindAdmin {
		return Identity{}, fmt.Errorf("unknown session kind %q", claims.Kind)
	}

	var id uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &id); err != nil {
		return Identity{}, fmt.Errorf("invalid session subject: %v", err)
	}

	return Identity{Kind: kind, ID: id, Email: claims.Email}, nil
}

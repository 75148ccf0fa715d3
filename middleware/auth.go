package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"institute-backend/constants"
	"institute-backend/services/session"
	"institute-backend/types"
)

const identityLocalKey = "identity"

// SessionMiddleware guards routes using signed session tokens. A token
// is accepted from the Authorization header first, then from the
// session cookie.
type SessionMiddleware struct {
	sessions *session.Manager
}

func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

func (m *SessionMiddleware) extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(constants.SessionCookie)
}

// OptionalAuth decodes the session if one is present and always lets
// the request through.
func (m *SessionMiddleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)
		if token != "" {
			if identity, err := m.sessions.Parse(token); err == nil {
				c.Locals(identityLocalKey, identity)
			}
		}
		return c.Next()
	}
}

// RequireAuth rejects requests without a valid session.
func (m *SessionMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		identity, err := m.sessions.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired session",
				Status:  fiber.StatusUnauthorized,
			})
		}
		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

// RequireStudent allows only student sessions.
func (m *SessionMiddleware) RequireStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		identity, err := m.sessions.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired session",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !identity.IsStudent() {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Student access required",
				Status:  fiber.StatusForbidden,
			})
		}
		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

// RequireAdmin allows only administrator sessions.
func (m *SessionMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := m.extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		identity, err := m.sessions.Parse(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired session",
				Status:  fiber.StatusUnauthorized,
			})
		}
		if !identity.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Administrator access required",
				Status:  fiber.StatusForbidden,
			})
		}
		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

// CurrentIdentity returns the decoded session for the request, if any.
func CurrentIdentity(c *fiber.Ctx) (session.Identity, bool) {
	identity, ok := c.Locals(identityLocalKey).(session.Identity)
	return identity, ok
}

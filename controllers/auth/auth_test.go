package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"institute-backend/constants"
	"institute-backend/logger"
	"institute-backend/middleware"
	"institute-backend/services/session"
)

// unreachableDB opens a lazy handle against a closed port so every
// query fails, standing in for session subjects that no longer resolve.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "host=127.0.0.1 port=1 user=test dbname=test sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open stub database: %v", err)
	}
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *session.Manager) {
	t.Helper()
	sessions := session.NewManager("test-secret", time.Hour)
	ctrl := NewAuthController(unreachableDB(t), sessions, logger.NewAsyncLogger(nil))
	mw := middleware.NewSessionMiddleware(sessions)

	app := fiber.New()
	app.Get("/api/auth/me", mw.OptionalAuth(), ctrl.Me)
	app.Post("/api/auth/logout", ctrl.Logout)
	return app, sessions
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func decodeMe(t *testing.T, resp *http.Response) bool {
	t.Helper()
	var body struct {
		IsAuthenticated bool `json:"is_authenticated"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body.IsAuthenticated
}

func TestMeWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if decodeMe(t, resp) {
		t.Error("is_authenticated = true without a session")
	}
}

func TestMeWithStaleStudentSessionClearsCookie(t *testing.T) {
	app, sessions := newTestApp(t)

	token, err := sessions.Issue(session.Identity{
		Kind:  session.KindStudent,
		ID:    9999,
		Email: "gone@example.com",
	})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if decodeMe(t, resp) {
		t.Error("is_authenticated = true for a student that no longer resolves")
	}

	cookie := findCookie(resp, constants.SessionCookie)
	if cookie == nil {
		t.Fatal("stale session response did not reset the session cookie")
	}
	if cookie.Value != "" {
		t.Errorf("session cookie value = %q, want empty", cookie.Value)
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	app, sessions := newTestApp(t)

	token, err := sessions.Issue(session.Identity{
		Kind:  session.KindStudent,
		ID:    1,
		Email: "student@example.com",
	})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookie, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	cookie := findCookie(resp, constants.SessionCookie)
	if cookie == nil {
		t.Fatal("logout response did not reset the session cookie")
	}
	if cookie.Value != "" {
		t.Errorf("session cookie value = %q, want empty", cookie.Value)
	}
}

package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	notificationService "institute-backend/httpServices/notification"
	"institute-backend/logger"
)

// unreachableDB opens a lazy handle against a closed port; the bulk
// email handler only touches it when no explicit recipients are given.
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

func newBulkEmailApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("SMTP_HOST", "")

	ctrl := NewNotificationController(unreachableDB(t), notificationService.NewService(), logger.NewAsyncLogger(nil))
	app := fiber.New()
	app.Post("/api/admin/notifications/bulk-email", ctrl.BulkEmail)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestBulkEmailRejectsMissingSubject(t *testing.T) {
	app := newBulkEmailApp(t)

	resp := postJSON(t, app, "/api/admin/notifications/bulk-email",
		`{"subject":"","body":"hello","recipients":["a@example.com"]}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestBulkEmailFailureUsesErrorEnvelope(t *testing.T) {
	app := newBulkEmailApp(t)

	resp := postJSON(t, app, "/api/admin/notifications/bulk-email",
		`{"subject":"Exam schedule","body":"Dates attached","recipients":["a@example.com"]}`)

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}

	var body struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
		Data    struct {
			Requested int      `json:"requested"`
			Failed    []string `json:"failed"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if body.Message == "" {
		t.Error("error response has no message")
	}
	if body.Status != http.StatusInternalServerError {
		t.Errorf("body status = %d, want %d", body.Status, http.StatusInternalServerError)
	}
	if body.Data.Requested != 1 {
		t.Errorf("requested = %d, want 1", body.Data.Requested)
	}
	if len(body.Data.Failed) != 1 || body.Data.Failed[0] != "a@example.com" {
		t.Errorf("failed = %v, want the one requested recipient", body.Data.Failed)
	}
}

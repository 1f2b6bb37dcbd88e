package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/models"
	"github.com/terraincognita07/emotrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-with-32-characters!"

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "emotrack-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, Options{
		SecretKey:  testSecretKey,
		Algorithm:  "HS256",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, database: database, handler: handler}
}

func (env *testApp) do(t *testing.T, method string, path string, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return env.send(t, request)
}

func (env *testApp) login(t *testing.T, email string, password string) (*http.Response, []byte) {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return env.send(t, request)
}

func (env *testApp) send(t *testing.T, request *http.Request) (*http.Response, []byte) {
	t.Helper()

	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, payload
}

// registerAndLogin returns the new identity id and a bearer token for it.
func (env *testApp) registerAndLogin(t *testing.T, name string, email string) (string, string) {
	t.Helper()

	response, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"nome":  name,
		"email": email,
		"idade": 25,
		"senha": "123456",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, response.StatusCode, body)
	}
	userID := decodeJSON[map[string]string](t, body)["id"]

	response, body = env.login(t, email, "123456")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", email, response.StatusCode, body)
	}
	return userID, decodeJSON[map[string]string](t, body)["access_token"]
}

func (env *testApp) countActivity(t *testing.T, userID string, action string) int64 {
	t.Helper()

	var count int64
	if err := env.database.Model(&models.ActivityLog{}).Where("user_id = ? AND action = ?", userID, action).Count(&count).Error; err != nil {
		t.Fatalf("count activity: %v", err)
	}
	return count
}

func testTokenService(t *testing.T) *security.TokenService {
	t.Helper()

	tokens, err := security.NewTokenService([]byte(testSecretKey), "HS256", time.Hour)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}
	return tokens
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
	return value
}

func expectError(t *testing.T, response *http.Response, body []byte, status int, message string) {
	t.Helper()

	if response.StatusCode != status {
		t.Fatalf("expected status %d, got %d (%s)", status, response.StatusCode, body)
	}
	if got := decodeJSON[map[string]string](t, body)["error"]; got != message {
		t.Fatalf("expected error %q, got %q", message, got)
	}
}

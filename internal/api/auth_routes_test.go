package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/emotrack/internal/models"
)

func TestRegisterLoginMeFlow(t *testing.T) {
	env := newTestApp(t)

	response, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"nome":  "Leo",
		"email": "leo@test.com",
		"idade": 25,
		"senha": "123456",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", response.StatusCode, body)
	}
	userID := decodeJSON[map[string]string](t, body)["id"]
	if _, ok := models.ParseID(userID); !ok {
		t.Fatalf("expected store id in response, got %q", userID)
	}

	response, body = env.login(t, "leo@test.com", "123456")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", response.StatusCode, body)
	}
	grant := decodeJSON[map[string]string](t, body)
	if grant["token_type"] != "bearer" || grant["access_token"] == "" {
		t.Fatalf("unexpected token response: %v", grant)
	}

	response, body = env.do(t, http.MethodGet, "/api/v1/me", grant["access_token"], nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", response.StatusCode, body)
	}
	me := decodeJSON[map[string]any](t, body)
	if me["id"] != userID || me["nome"] != "Leo" || me["email"] != "leo@test.com" || me["idade"] != float64(25) {
		t.Fatalf("unexpected /me payload: %v", me)
	}
	if len(me) != 4 {
		t.Fatalf("expected exactly id, nome, email, idade; got %v", me)
	}

	if env.countActivity(t, userID, models.ActionRegisterUser) != 1 || env.countActivity(t, userID, models.ActionLogin) != 1 {
		t.Fatal("expected registro_usuario and login activity entries")
	}
}

func TestRegisterDuplicateEmailIsBadRequest(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "Leo", "leo@test.com")

	response, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"nome":  "Other Leo",
		"email": "LEO@test.com",
		"idade": 30,
		"senha": "abcdef",
	})
	expectError(t, response, body, http.StatusBadRequest, "email already registered")
}

func TestRegisterValidatesBody(t *testing.T) {
	env := newTestApp(t)

	testCases := []map[string]any{
		{"nome": "Leo", "email": "not-an-email", "idade": 25, "senha": "123456"},
		{"nome": "Leo", "email": "leo@test.com", "idade": -1, "senha": "123456"},
		{"nome": "Leo", "email": "leo@test.com", "idade": 25, "senha": "12345"},
		{"nome": "Leo", "email": "leo@test.com", "idade": 25, "senha": strings.Repeat("a", 73)},
		{"email": "leo@test.com", "idade": 25, "senha": "123456"},
		{"nome": "Leo", "email": "leo@test.com", "idade": "twenty", "senha": "123456"},
	}
	for _, payload := range testCases {
		response, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", payload)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("payload %v: expected 400, got %d (%s)", payload, response.StatusCode, body)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "Leo", "leo@test.com")

	response, body := env.login(t, "leo@test.com", "wrong-password")
	expectError(t, response, body, http.StatusUnauthorized, "incorrect email or password")
	if response.Header.Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer, got %q", response.Header.Get("WWW-Authenticate"))
	}

	response, body = env.login(t, "ghost@test.com", "123456")
	expectError(t, response, body, http.StatusUnauthorized, "incorrect email or password")
}

func TestLoginIsThrottledAfterRepeatedFailures(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "Leo", "leo@test.com")

	for attempt := 0; attempt < loginFailureLimit; attempt++ {
		response, body := env.login(t, "leo@test.com", "wrong-password")
		expectError(t, response, body, http.StatusUnauthorized, "incorrect email or password")
	}

	response, body := env.login(t, "leo@test.com", "123456")
	expectError(t, response, body, http.StatusTooManyRequests, errMessageTooManyTries)

	env.handler.now = func() time.Time { return time.Now().Add(loginFailureWindow + time.Minute) }
	response, body = env.login(t, "leo@test.com", "123456")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login to succeed after the window, got %d (%s)", response.StatusCode, body)
	}
}

func TestAuthRequiredRejectsMissingAndBadTokens(t *testing.T) {
	env := newTestApp(t)
	env.registerAndLogin(t, "Leo", "leo@test.com")
	tokens := testTokenService(t)

	expired, err := tokens.IssueWithTTL("leo@test.com", 0)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	orphan, err := tokens.Issue("ghost@test.com")
	if err != nil {
		t.Fatalf("issue orphan token: %v", err)
	}

	for _, token := range []string{"", "garbage", expired, orphan} {
		response, body := env.do(t, http.MethodGet, "/api/v1/me", token, nil)
		expectError(t, response, body, http.StatusUnauthorized, "unauthorized")
		if response.Header.Get("WWW-Authenticate") != "Bearer" {
			t.Fatalf("token %q: expected WWW-Authenticate header", token)
		}
	}
}

func TestBearerToken(t *testing.T) {
	testCases := map[string]string{
		"Bearer abc.def.ghi":   "abc.def.ghi",
		"bearer   abc.def.ghi": "abc.def.ghi",
		"Basic dXNlcjpwYXNz":   "",
		"Bearer":               "",
		"":                     "",
	}
	for header, want := range testCases {
		if got := bearerToken(header); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestHealthz(t *testing.T) {
	env := newTestApp(t)

	response, body := env.do(t, http.MethodGet, "/healthz", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	if decodeJSON[map[string]string](t, body)["status"] != "ok" {
		t.Fatalf("unexpected health payload: %s", body)
	}
}

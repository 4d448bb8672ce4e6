package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"cafe-julio/config"

	"github.com/gin-gonic/gin"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Port: "0"},
		Session: config.SessionConfig{
			Secret:     "test-secret",
			CookieName: "barista_session",
			MaxAgeSec:  3600,
		},
		WhatsApp: config.WhatsAppConfig{
			OrderRecipients:  []string{"5554996027120"},
			FitMealRecipient: "5554999999999",
		},
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(cfg, nil, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestSessionSignParseRoundTrip(t *testing.T) {
	s := testServer()
	token, err := s.signSession(Session{BaristaID: 42, Email: "demo@cafe.com"})
	if err != nil {
		t.Fatalf("signSession: %v", err)
	}
	sess, err := s.parseSession(token)
	if err != nil {
		t.Fatalf("parseSession: %v", err)
	}
	if sess.BaristaID != 42 || sess.Email != "demo@cafe.com" {
		t.Errorf("round trip = %+v", sess)
	}
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	s := testServer()
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := s.parseSession(tok); err == nil {
			t.Errorf("parseSession(%q) accepted invalid token", tok)
		}
	}
}

func TestParseSessionRejectsWrongKey(t *testing.T) {
	s := testServer()
	token, err := s.signSession(Session{BaristaID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("signSession: %v", err)
	}
	other := testServer()
	other.cfg.Session.Secret = "different"
	if _, err := other.parseSession(token); err == nil {
		t.Error("token signed with another key was accepted")
	}
}

func TestAvailabilityToggleRequiresSession(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodPatch, "/api/admin/items/7/availability", `{"isAvailable":false}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAdminItemsRequiresSession(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodGet, "/api/admin/items", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGatedRoutesAcceptValidSession(t *testing.T) {
	s := testServer()
	token, err := s.signSession(Session{BaristaID: 1, Email: "demo@cafe.com"})
	if err != nil {
		t.Fatalf("signSession: %v", err)
	}
	cookie := &http.Cookie{Name: s.cfg.Session.CookieName, Value: token}

	// No DB in unit tests: the guard passes, the store reports
	// unavailable. The point is the 401 is gone.
	w := doJSON(t, s, http.MethodGet, "/api/admin/items", "", cookie)
	if w.Code == http.StatusUnauthorized {
		t.Errorf("valid session rejected: %d", w.Code)
	}
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 without a store", w.Code)
	}
}

func TestMeWithoutSessionIsNull(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodGet, "/api/barista/me", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "null" {
		t.Errorf("body = %q, want null", got)
	}
}

func TestMeWithSession(t *testing.T) {
	s := testServer()
	token, _ := s.signSession(Session{BaristaID: 7, Email: "demo@cafe.com"})
	w := doJSON(t, s, http.MethodGet, "/api/barista/me", "", &http.Cookie{Name: s.cfg.Session.CookieName, Value: token})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var sess Session
	if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sess.BaristaID != 7 {
		t.Errorf("baristaId = %d, want 7", sess.BaristaID)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := testServer()
	for i := 0; i < 2; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/barista/logout", "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("logout #%d status = %d, want 200", i+1, w.Code)
		}
	}
}

func TestLoginRejectsBadBody(t *testing.T) {
	s := testServer()
	tests := []string{
		`{}`,
		`{"email":"demo@cafe.com"}`,
		`{"email":"not-an-email","password":"x"}`,
	}
	for _, body := range tests {
		w := doJSON(t, s, http.MethodPost, "/api/barista/login", body, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("login %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestMenuInvalidCategory(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodGet, "/api/menu?category=sopas", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestMenuDegradesToEmptyList(t *testing.T) {
	s := testServer()
	for _, path := range []string{"/api/menu?category=daily", "/api/menu/all", "/api/gallery"} {
		w := doJSON(t, s, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
			continue
		}
		if got := strings.TrimSpace(w.Body.String()); got != "[]" {
			t.Errorf("%s: body = %q, want []", path, got)
		}
	}
}

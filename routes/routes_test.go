package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aniket-49001/Railway-Concession/store"
)

// The router is exercised without a database: users go to the file store
// and booking endpoints degrade, which is exactly the outage behavior the
// server promises.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	return SetupRouter(Deps{
		Users:    store.NewFileUserStore(filepath.Join(t.TempDir(), "users.json")),
		Sessions: store.NewSessionStore(time.Hour),
	})
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, email string) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/register", gin.H{"email": email, "password": "secret123"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func login(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/login", gin.H{"email": email, "password": "secret123"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("login did not set a session cookie")
	}
	return cookies
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{"email": "A@B.com", "password": "secret123"}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register", gin.H{"email": "a@b.com", "password": "123"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")

	w := doJSON(r, http.MethodPost, "/api/login", gin.H{"email": "a@b.com", "password": "wrongpass"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")
	cookies := login(t, r, "a@b.com")

	w := doJSON(r, http.MethodGet, "/api/profile", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var profile struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "a@b.com" || profile.Role != "student" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestBearerTokenAuth(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")

	w := doJSON(r, http.MethodPost, "/api/login", gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d", w.Code)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("login response missing token: %v %s", err, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer auth: expected 200, got %d", rec.Code)
	}
}

func TestLogoutKillsSession(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")
	cookies := login(t, r, "a@b.com")

	if w := doJSON(r, http.MethodPost, "/api/logout", nil, cookies); w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/profile", nil, cookies); w.Code != http.StatusUnauthorized {
		t.Fatalf("profile after logout: expected 401, got %d", w.Code)
	}
}

func TestBookingRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings",
		gin.H{"trainNumber": "12001", "passengers": 2, "journeyDate": "2030-01-01"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestBookingDegradesWithoutDatabase(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")
	cookies := login(t, r, "a@b.com")

	w := doJSON(r, http.MethodPost, "/api/bookings",
		gin.H{"trainNumber": "12001", "passengers": 2, "journeyDate": "2030-01-01"}, cookies)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestReadEndpointsDegradeToEmptyLists(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/trains", "/api/stations", "/api/colleges", "/api/trains/search?source=delhi"} {
		w := doJSON(r, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("%s: expected empty list, got %s", path, body)
		}
	}
}

func TestAddTrainNeedsRailwayRole(t *testing.T) {
	r := newTestRouter(t)
	register(t, r, "a@b.com")
	cookies := login(t, r, "a@b.com")

	w := doJSON(r, http.MethodPost, "/api/trains", gin.H{
		"trainNumber": "12009", "trainName": "Test Express", "source": "A", "destination": "B",
		"totalSeats": 100, "fare": 100,
	}, cookies)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student, got %d", w.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/status", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var status struct {
		Status      string `json:"status"`
		DBConnected bool   `json:"dbConnected"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Status != "ok" || status.DBConnected {
		t.Fatalf("unexpected status payload: %+v", status)
	}
}

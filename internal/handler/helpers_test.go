package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/club-manager/internal/config"
	"github.com/iliyamo/club-manager/internal/router"
	"github.com/iliyamo/club-manager/internal/store"
)

// newTestServer builds a fully wired Echo instance over a fresh store
// seeded in a temp directory.  bcrypt runs at MinCost to keep the seed
// and login paths fast.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{
		Env:        "test",
		Port:       "0",
		DataFile:   filepath.Join(t.TempDir(), "database.json"),
		JWTSecret:  "test-secret",
		SessionTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	st, err := store.Open(cfg.DataFile, cfg.BcryptCost)
	require.NoError(t, err)
	e := echo.New()
	router.Register(e, cfg, st)
	return e
}

// doJSON performs a request against the test server and returns the
// recorder.  body may be nil; cookie may be nil for unauthenticated
// requests.
func doJSON(t *testing.T, e *echo.Echo, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// newBearerRequest builds a request authenticated via the
// Authorization header instead of the cookie.
func newBearerRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// serve runs a prepared request through the test server.
func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeMap decodes a JSON object response body.
func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// decodeList decodes a JSON array response body.
func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// loginAs logs in with the given credentials and returns the session
// cookie set by the login endpoint.
func loginAs(t *testing.T, e *echo.Echo, username, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("login response did not set a token cookie")
	return nil
}

// createEvent creates an event through the API and returns its id.
func createEvent(t *testing.T, e *echo.Echo, cookie *http.Cookie, name string, price float64, capacity int) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/events", map[string]any{
		"name":        name,
		"description": "test event",
		"date":        "2026-10-01",
		"time":        "19:00",
		"price":       price,
		"capacity":    capacity,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	event, ok := decodeMap(t, rec)["event"].(map[string]any)
	require.True(t, ok)
	return event["id"].(string)
}

// createUser creates a user through the API (owner cookie required) and
// returns its id.
func createUser(t *testing.T, e *echo.Echo, owner *http.Cookie, username, password, role, name string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/users", map[string]string{
		"username": username,
		"password": password,
		"role":     role,
		"name":     name,
	}, owner)
	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := decodeMap(t, rec)["user"].(map[string]any)
	require.True(t, ok)
	return user["id"].(string)
}

// createBooking books tickets and returns the booking id.
func createBooking(t *testing.T, e *echo.Echo, cookie *http.Cookie, eventID string, tickets int) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/bookings", map[string]any{
		"eventId": eventID,
		"tickets": tickets,
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	booking, ok := decodeMap(t, rec)["booking"].(map[string]any)
	require.True(t, ok)
	return booking["id"].(string)
}

// myID returns the id embedded in the caller's session.
func myID(t *testing.T, e *echo.Echo, cookie *http.Cookie) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodGet, "/api/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	user, ok := decodeMap(t, rec)["user"].(map[string]any)
	require.True(t, ok)
	return user["id"].(string)
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsUserSummaryAndCookie(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"username": "owner",
		"password": "owner123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeMap(t, rec)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "owner", user["username"])
	assert.Equal(t, "owner", user["role"])
	assert.Equal(t, "Club Owner", user["name"])
	assert.NotContains(t, user, "password")

	found := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			found = true
			assert.True(t, ck.HttpOnly)
			assert.NotEmpty(t, ck.Value)
		}
	}
	assert.True(t, found, "login must set the token cookie")
}

// Wrong password and nonexistent username must be indistinguishable so
// the login endpoint cannot be used to enumerate accounts.
func TestLoginFailuresAreUniform(t *testing.T) {
	e := newTestServer(t)

	wrongPass := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"username": "owner",
		"password": "nope",
	}, nil)
	noUser := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"username": "who-is-this",
		"password": "nope",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.JSONEq(t, wrongPass.Body.String(), noUser.Body.String())
}

func TestMeRequiresSession(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeDecodesIdentity(t *testing.T) {
	e := newTestServer(t)
	cookie := loginAs(t, e, "user", "user123")

	rec := doJSON(t, e, http.MethodGet, "/api/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeMap(t, rec)["user"].(map[string]any)
	assert.Equal(t, "user", user["username"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "John Doe", user["name"])
}

func TestBearerTokenAccepted(t *testing.T) {
	e := newTestServer(t)

	login := doJSON(t, e, http.MethodPost, "/api/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)
	token := decodeMap(t, login)["token"].(string)

	req := newBearerRequest(http.MethodGet, "/api/me", token)
	rec := serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	e := newTestServer(t)
	cookie := loginAs(t, e, "user", "user123")

	rec := doJSON(t, e, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			assert.Empty(t, ck.Value)
			assert.True(t, ck.MaxAge < 0 || ck.Expires.Unix() <= 0)
		}
	}
}

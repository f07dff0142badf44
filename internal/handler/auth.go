package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/config"
	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/store"
	"github.com/iliyamo/club-manager/internal/utils"
)

// AuthHandler bundles dependencies for the login/logout/me endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAuthHandler(cfg config.Config, st *store.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: st}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userSummary is the public shape of a user; the password hash never
// leaves the store layer.
type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Login verifies credentials and issues a session token as an httpOnly
// cookie (and in the body for Authorization-header clients).  A missing
// user and a wrong password produce the same error so the endpoint
// cannot be used to enumerate usernames.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}

	u := doc.FindUserByUsername(req.Username)
	if u == nil || !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, exp, err := utils.NewSessionToken(h.Cfg.JWTSecret, *u, h.Cfg.SessionTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"user":    userSummary{ID: u.ID, Username: u.Username, Role: u.Role, Name: u.Name},
	})
}

// Logout clears the session cookie.  Nothing is revoked server-side; a
// token captured before logout stays valid until its expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Me returns the identity decoded from the caller's session token.
func (h *AuthHandler) Me(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": ident})
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/config"
	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
	"github.com/iliyamo/club-manager/internal/utils"
)

// UserHandler implements owner-only user management.
type UserHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewUserHandler(cfg config.Config, st *store.Store) *UserHandler {
	return &UserHandler{Cfg: cfg, Store: st}
}

type createUserReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// List returns all users without their password hashes.
func (h *UserHandler) List(c echo.Context) error {
	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	out := make([]userSummary, 0, len(doc.Users))
	for _, u := range doc.Users {
		out = append(out, userSummary{ID: u.ID, Username: u.Username, Role: u.Role, Name: u.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a new user.  The username must be unique and the password
// is bcrypt-hashed before it reaches the store; on a duplicate username
// nothing is written.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}
	if !model.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	user := model.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: hash,
		Role:     req.Role,
		Name:     req.Name,
	}
	err = h.Store.Update(func(doc *model.Document) error {
		if doc.FindUserByUsername(req.Username) != nil {
			return store.ErrUsernameTaken
		}
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    userSummary{ID: user.ID, Username: user.Username, Role: user.Role, Name: user.Name},
	})
}

// Delete removes a user.  Owners cannot delete themselves; that would
// lock the account that is performing the deletion.
func (h *UserHandler) Delete(c echo.Context) error {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	id := c.Param("id")
	if id == ident.ID {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot delete yourself"})
	}

	err := h.Store.Update(func(doc *model.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
				return nil
			}
		}
		return store.ErrUserNotFound
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

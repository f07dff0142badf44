package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/club-manager/internal/model"
	"github.com/iliyamo/club-manager/internal/store"
)

// SettingsHandler serves the singleton settings object.  Both endpoints
// are owner-only; the router enforces that.
type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: st}
}

// settingsPatch uses pointer fields so a partial payload only touches
// the fields it actually carries.
type settingsPatch struct {
	ClubName        *string `json:"clubName"`
	ClubDescription *string `json:"clubDescription"`
	MaintenanceMode *bool   `json:"maintenanceMode"`
}

// Get returns the current settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	doc, err := h.Store.Load()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, doc.Settings)
}

// Update shallow-merges the supplied fields into the settings.  Fields
// absent from the payload keep their current values.
func (h *SettingsHandler) Update(c echo.Context) error {
	var patch settingsPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var updated model.Settings
	err := h.Store.Update(func(doc *model.Document) error {
		if patch.ClubName != nil {
			doc.Settings.ClubName = *patch.ClubName
		}
		if patch.ClubDescription != nil {
			doc.Settings.ClubDescription = *patch.ClubDescription
		}
		if patch.MaintenanceMode != nil {
			doc.Settings.MaintenanceMode = *patch.MaintenanceMode
		}
		updated = doc.Settings
		return nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "settings": updated})
}

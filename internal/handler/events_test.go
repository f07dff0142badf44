package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCreateForbiddenForUserRole(t *testing.T) {
	e := newTestServer(t)
	cookie := loginAs(t, e, "user", "user123")

	rec := doJSON(t, e, http.MethodPost, "/api/events", map[string]any{
		"name": "Sneaky Gala", "price": 10.0, "capacity": 5,
	}, cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEventCreateValidation(t *testing.T) {
	e := newTestServer(t)
	admin := loginAs(t, e, "admin", "admin123")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing name", map[string]any{"price": 10.0, "capacity": 5}},
		{"negative price", map[string]any{"name": "Gala", "price": -1.0, "capacity": 5}},
		{"zero capacity", map[string]any{"name": "Gala", "price": 10.0, "capacity": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/api/events", tt.body, admin)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEventCreateAndList(t *testing.T) {
	e := newTestServer(t)
	admin := loginAs(t, e, "admin", "admin123")

	id := createEvent(t, e, admin, "Wine Tasting", 25.5, 10)

	user := loginAs(t, e, "user", "user123")
	rec := doJSON(t, e, http.MethodGet, "/api/events", nil, user)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decodeList(t, rec)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0]["id"])
	assert.Equal(t, "Wine Tasting", events[0]["name"])
	assert.Equal(t, 25.5, events[0]["price"])
	assert.Equal(t, float64(10), events[0]["capacity"])
	assert.Equal(t, myID(t, e, admin), events[0]["createdBy"])
}

func TestEventUpdateShallowMerge(t *testing.T) {
	e := newTestServer(t)
	admin := loginAs(t, e, "admin", "admin123")
	id := createEvent(t, e, admin, "Jazz Night", 30, 40)

	rec := doJSON(t, e, http.MethodPut, "/api/events/"+id, map[string]any{
		"price": 35.0,
	}, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	event := decodeMap(t, rec)["event"].(map[string]any)
	assert.Equal(t, 35.0, event["price"])
	assert.Equal(t, "Jazz Night", event["name"], "fields absent from the payload must be untouched")
	assert.Equal(t, float64(40), event["capacity"])
}

func TestEventUpdateMissing(t *testing.T) {
	e := newTestServer(t)
	admin := loginAs(t, e, "admin", "admin123")

	rec := doJSON(t, e, http.MethodPut, "/api/events/no-such-id", map[string]any{"price": 1.0}, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventDelete(t *testing.T) {
	e := newTestServer(t)
	admin := loginAs(t, e, "admin", "admin123")
	id := createEvent(t, e, admin, "One Off", 5, 3)

	rec := doJSON(t, e, http.MethodDelete, "/api/events/"+id, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	list := doJSON(t, e, http.MethodGet, "/api/events", nil, admin)
	assert.Len(t, decodeList(t, list), 0)

	again := doJSON(t, e, http.MethodDelete, "/api/events/"+id, nil, admin)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

// Maintenance mode blocks role "user" from the read endpoints while
// privileged roles keep working.
func TestMaintenanceGate(t *testing.T) {
	e := newTestServer(t)
	owner := loginAs(t, e, "owner", "owner123")
	admin := loginAs(t, e, "admin", "admin123")
	user := loginAs(t, e, "user", "user123")

	rec := doJSON(t, e, http.MethodPut, "/api/settings", map[string]any{"maintenanceMode": true}, owner)
	require.Equal(t, http.StatusOK, rec.Code)

	blocked := doJSON(t, e, http.MethodGet, "/api/events", nil, user)
	assert.Equal(t, http.StatusServiceUnavailable, blocked.Code)

	allowed := doJSON(t, e, http.MethodGet, "/api/events", nil, admin)
	assert.Equal(t, http.StatusOK, allowed.Code)

	// Clearing the flag lifts the gate immediately.
	rec = doJSON(t, e, http.MethodPut, "/api/settings", map[string]any{"maintenanceMode": false}, owner)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusOK, doJSON(t, e, http.MethodGet, "/api/events", nil, user).Code)
}

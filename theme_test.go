package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eibs-cms/dto"
	"eibs-cms/model"
)

func TestThemeDefaultsWhenUnset(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/theme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var theme dto.Theme
	decodeJSON(t, resp, &theme)
	assert.Equal(t, dto.DefaultTheme(), theme)
}

func TestThemeSaveAndRoundTrip(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPatch, "/api/admin/theme", token, dto.Theme{
		Primary: "#123abc",
		Hover:   "#456DEF",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved dto.Theme
	decodeJSON(t, resp, &saved)
	assert.Equal(t, "#123abc", saved.Primary)

	resp = request(t, app, http.MethodGet, "/api/theme", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched dto.Theme
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, "#123abc", fetched.Primary)
	assert.Equal(t, "#456DEF", fetched.Hover)

	// Saving again overwrites the single setting row.
	resp = request(t, app, http.MethodPut, "/api/admin/theme", token, dto.Theme{
		Primary: "#000000",
		Hover:   "#ffffff",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, db.Model(&model.Setting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestThemeRejectsInvalidColors(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	for _, bad := range []dto.Theme{
		{Primary: "red", Hover: "#b20500"},
		{Primary: "#e10600", Hover: "#e106"},
		{Primary: "e10600", Hover: "#b20500"},
		{Hover: "#b20500"},
	} {
		resp := request(t, app, http.MethodPut, "/api/admin/theme", token, bad)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%+v", bad)
	}
}

func TestThemeUpdateIsAdminOnly(t *testing.T) {
	app, db := newTestApp(t)
	_, editorToken := seedUser(t, db, "editor@eibs.com", model.RoleEditor)

	resp := request(t, app, http.MethodPut, "/api/admin/theme", editorToken, dto.Theme{
		Primary: "#123456",
		Hover:   "#654321",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodPut, "/api/admin/theme", "", dto.Theme{
		Primary: "#123456",
		Hover:   "#654321",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

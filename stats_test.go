package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eibs-cms/dto"
	"eibs-cms/model"
)

func TestStatsCounts(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "creator@eibs.com", model.RoleContentCreator)

	require.NoError(t, db.Create(&model.Page{Slug: "p1", Title: "P1", Content: model.JSONDocument(`[]`)}).Error)
	require.NoError(t, db.Create(&model.ContactSubmission{Name: "n", Email: "n@example.com", Message: "m", Status: model.SubmissionNew}).Error)
	require.NoError(t, db.Create(&model.ContactSubmission{Name: "m", Email: "m@example.com", Message: "m", Status: model.SubmissionNew}).Error)

	resp := request(t, app, http.MethodGet, "/api/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats dto.Stats
	decodeJSON(t, resp, &stats)
	assert.Equal(t, int64(1), stats.Pages)
	assert.Equal(t, int64(0), stats.CaseStudies)
	assert.Equal(t, int64(0), stats.BlogPosts)
	assert.Equal(t, int64(2), stats.ContactSubmissions)
}

func TestStatsRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthReportsStoreReady(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		OK         bool  `json:"ok"`
		Timestamp  int64 `json:"timestamp"`
		StoreReady bool  `json:"storeReady"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.OK)
	assert.True(t, body.StoreReady)
	assert.NotZero(t, body.Timestamp)
}

func TestUnconfiguredStoreAnswers503(t *testing.T) {
	app := newUnconfiguredApp(t)

	// Every /api route short-circuits before auth or handlers run.
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/case-studies"},
		{http.MethodGet, "/api/theme"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/admin/stats"},
	}
	for _, p := range paths {
		resp := request(t, app, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "%s %s", p.method, p.path)
	}

	// The health check still answers and reports the store as down.
	resp := request(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		OK         bool `json:"ok"`
		StoreReady bool `json:"storeReady"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.OK)
	assert.False(t, body.StoreReady)
}

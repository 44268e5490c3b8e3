package main

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eibs-cms/model"
)

func caseStudyPayload(slug string) map[string]interface{} {
	return map[string]interface{}{
		"slug":       slug,
		"title":      "Rebrand for Najd Coffee",
		"summary":    "Full identity refresh for a specialty roaster.",
		"client":     "Najd Coffee",
		"industry":   []string{"F&B"},
		"region":     "KSA",
		"year":       2024,
		"services":   []string{"Brand Identity", "Packaging"},
		"coverImage": "https://cdn.example.com/najd/cover.jpg",
	}
}

func TestCaseStudyCreateAndPublicRead(t *testing.T) {
	app, db := newTestApp(t)
	admin, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("najd-coffee"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.CaseStudy
	decodeJSON(t, resp, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.LangEnglish, created.Lang)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, admin.ID, *created.CreatedBy)

	resp = request(t, app, http.MethodGet, "/api/case-studies/najd-coffee", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched model.CaseStudy
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, []string{"Brand Identity", "Packaging"}, []string(fetched.Services))
}

func TestCaseStudyListOrderedByYearDesc(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	for i, year := range []int{2021, 2024, 2019} {
		payload := caseStudyPayload(fmt.Sprintf("study-%d", i))
		payload["year"] = year
		resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := request(t, app, http.MethodGet, "/api/case-studies", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var studies []model.CaseStudy
	decodeJSON(t, resp, &studies)
	require.Len(t, studies, 3)
	assert.Equal(t, 2024, studies[0].Year)
	assert.Equal(t, 2021, studies[1].Year)
	assert.Equal(t, 2019, studies[2].Year)
}

func TestCaseStudyFeaturedFilter(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	featured := caseStudyPayload("featured-study")
	featured["featured"] = true
	plain := caseStudyPayload("plain-study")

	for _, payload := range []map[string]interface{}{featured, plain} {
		resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// "featured" is a literal route, not a slug.
	resp := request(t, app, http.MethodGet, "/api/case-studies/featured", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var studies []model.CaseStudy
	decodeJSON(t, resp, &studies)
	require.Len(t, studies, 1)
	assert.Equal(t, "featured-study", studies[0].Slug)
}

func TestCaseStudyLangFilter(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	en := caseStudyPayload("english-study")
	ar := caseStudyPayload("arabic-study")
	ar["lang"] = "ar"

	for _, payload := range []map[string]interface{}{en, ar} {
		resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := request(t, app, http.MethodGet, "/api/case-studies?lang=ar", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var studies []model.CaseStudy
	decodeJSON(t, resp, &studies)
	require.Len(t, studies, 1)
	assert.Equal(t, "arabic-study", studies[0].Slug)
}

func TestCaseStudyUnknownSlug(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/case-studies/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCaseStudyDuplicateSlug(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("twice"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("twice"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decodeJSON(t, resp, &body)
	assert.Equal(t, "slug already exists", body["error"])
}

func TestCaseStudyCreateValidation(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, map[string]interface{}{
		"slug": "incomplete",
		"lang": "fr",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Details, "Title")
	assert.Contains(t, body.Details, "Summary")
	assert.Contains(t, body.Details, "CoverImage")
	assert.Contains(t, body.Details, "Lang")
}

func TestCaseStudyPartialUpdateMerges(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("merge-me"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.CaseStudy
	decodeJSON(t, resp, &created)

	time.Sleep(10 * time.Millisecond)
	resp = request(t, app, http.MethodPatch, "/api/admin/case-studies/"+created.ID.String(), token, map[string]interface{}{
		"title":    "New Title",
		"featured": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.CaseStudy
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "New Title", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Client, updated.Client)
	assert.Equal(t, created.Year, updated.Year)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestCaseStudyUpdateEmptyBodyReturnsRecord(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("unchanged"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.CaseStudy
	decodeJSON(t, resp, &created)

	resp = request(t, app, http.MethodPatch, "/api/admin/case-studies/"+created.ID.String(), token, map[string]interface{}{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched model.CaseStudy
	decodeJSON(t, resp, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)
}

func TestCaseStudyUpdateUnknownID(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPatch, "/api/admin/case-studies/"+uuid.NewString(), token, map[string]interface{}{
		"title": "anything",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCaseStudyUpdateMalformedID(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPatch, "/api/admin/case-studies/not-a-uuid", token, map[string]interface{}{
		"title": "anything",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCaseStudyDeleteThenGone(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)

	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", token, caseStudyPayload("short-lived"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.CaseStudy
	decodeJSON(t, resp, &created)

	resp = request(t, app, http.MethodDelete, "/api/admin/case-studies/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = request(t, app, http.MethodGet, "/api/case-studies/short-lived", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Repeat delete is a no-op, still 204.
	resp = request(t, app, http.MethodDelete, "/api/admin/case-studies/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCaseStudyRoleGates(t *testing.T) {
	app, db := newTestApp(t)
	_, adminToken := seedUser(t, db, "admin@eibs.com", model.RoleAdmin)
	_, editorToken := seedUser(t, db, "editor@eibs.com", model.RoleEditor)
	_, creatorToken := seedUser(t, db, "creator@eibs.com", model.RoleContentCreator)

	// No token at all.
	resp := request(t, app, http.MethodPost, "/api/admin/case-studies", "", caseStudyPayload("no-auth"))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Content creators may not touch case studies.
	resp = request(t, app, http.MethodPost, "/api/admin/case-studies", creatorToken, caseStudyPayload("creator-denied"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Editors may create and update but not delete.
	resp = request(t, app, http.MethodPost, "/api/admin/case-studies", editorToken, caseStudyPayload("editor-made"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.CaseStudy
	decodeJSON(t, resp, &created)

	resp = request(t, app, http.MethodDelete, "/api/admin/case-studies/"+created.ID.String(), editorToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/api/admin/case-studies/"+created.ID.String(), adminToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Read-only admin routes take any authenticated identity.
	resp = request(t, app, http.MethodGet, "/api/admin/case-studies", creatorToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

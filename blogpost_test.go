package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eibs-cms/model"
)

func blogPostPayload(slug, status string) map[string]interface{} {
	return map[string]interface{}{
		"slug":       slug,
		"title":      "Designing for the Gulf market",
		"coverImage": "https://cdn.example.com/blog/cover.jpg",
		"body":       "<p>Long-form article body.</p>",
		"tags":       []string{"branding", "strategy"},
		"status":     status,
	}
}

func TestBlogPostDraftHiddenFromPublic(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "creator@eibs.com", model.RoleContentCreator)

	resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", token, blogPostPayload("draft-post", "draft"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.BlogPost
	decodeJSON(t, resp, &created)
	assert.Equal(t, model.BlogStatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)

	// Public list and detail treat drafts as nonexistent.
	resp = request(t, app, http.MethodGet, "/api/blog-posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []model.BlogPost
	decodeJSON(t, resp, &posts)
	assert.Empty(t, posts)

	resp = request(t, app, http.MethodGet, "/api/blog-posts/draft-post", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The admin list still sees it.
	resp = request(t, app, http.MethodGet, "/api/admin/blog-posts", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &posts)
	assert.Len(t, posts, 1)
}

func TestBlogPostCreatePublishedStampsTimestamp(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "editor@eibs.com", model.RoleEditor)

	resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", token, blogPostPayload("live-post", "published"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.BlogPost
	decodeJSON(t, resp, &created)
	assert.Equal(t, model.BlogStatusPublished, created.Status)
	assert.NotNil(t, created.PublishedAt)

	resp = request(t, app, http.MethodGet, "/api/blog-posts/live-post", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBlogPostPublishTransitionStampsOnce(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "editor@eibs.com", model.RoleEditor)

	resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", token, blogPostPayload("promoted", "draft"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.BlogPost
	decodeJSON(t, resp, &created)
	require.Nil(t, created.PublishedAt)

	resp = request(t, app, http.MethodPatch, "/api/admin/blog-posts/"+created.ID.String(), token, map[string]interface{}{
		"status": "published",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var published model.BlogPost
	decodeJSON(t, resp, &published)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Re-saving an already published post keeps the original timestamp.
	resp = request(t, app, http.MethodPatch, "/api/admin/blog-posts/"+created.ID.String(), token, map[string]interface{}{
		"status": "published",
		"title":  "Updated title",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var resaved model.BlogPost
	decodeJSON(t, resp, &resaved)
	require.NotNil(t, resaved.PublishedAt)
	assert.True(t, resaved.PublishedAt.Equal(firstStamp))
}

func TestBlogPostStatusFilter(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "editor@eibs.com", model.RoleEditor)

	for _, p := range []map[string]interface{}{
		blogPostPayload("one-draft", "draft"),
		blogPostPayload("one-review", "review"),
		blogPostPayload("one-live", "published"),
	} {
		resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", token, p)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := request(t, app, http.MethodGet, "/api/admin/blog-posts?status=review", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []model.BlogPost
	decodeJSON(t, resp, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, "one-review", posts[0].Slug)
}

func TestBlogPostCreateValidation(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "creator@eibs.com", model.RoleContentCreator)

	resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", token, map[string]interface{}{
		"slug":   "missing-bits",
		"status": "archived",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Details map[string]string `json:"details"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Details, "Title")
	assert.Contains(t, body.Details, "Body")
	assert.Contains(t, body.Details, "Status")
}

func TestBlogPostRoleGates(t *testing.T) {
	app, db := newTestApp(t)
	_, editorToken := seedUser(t, db, "editor@eibs.com", model.RoleEditor)
	_, creatorToken := seedUser(t, db, "creator@eibs.com", model.RoleContentCreator)

	// Content creators write posts but cannot delete them.
	resp := request(t, app, http.MethodPost, "/api/admin/blog-posts", creatorToken, blogPostPayload("by-creator", "draft"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.BlogPost
	decodeJSON(t, resp, &created)

	resp = request(t, app, http.MethodPatch, "/api/admin/blog-posts/"+created.ID.String(), creatorToken, map[string]interface{}{
		"title": "Creator edit",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/api/admin/blog-posts/"+created.ID.String(), creatorToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodDelete, "/api/admin/blog-posts/"+created.ID.String(), editorToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"eibs-cms/model"
)

type CreateBlogPostRequest struct {
	Slug       string   `json:"slug" validate:"required,max=255"`
	Lang       string   `json:"lang" validate:"omitempty,oneof=en ar"`
	Title      string   `json:"title" validate:"required"`
	Summary    *string  `json:"summary"`
	CoverImage string   `json:"coverImage" validate:"required"`
	Body       string   `json:"body" validate:"required"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status" validate:"omitempty,oneof=draft review scheduled published"`

	ScheduledAt *time.Time `json:"scheduledAt"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`

	PublishedAt *time.Time `json:"publishedAt"`
}

func (r *CreateBlogPostRequest) ToModel(createdBy *uuid.UUID) *model.BlogPost {
	lang := model.Language(r.Lang)
	if lang == "" {
		lang = model.LangEnglish
	}
	status := model.BlogPostStatus(r.Status)
	if status == "" {
		status = model.BlogStatusDraft
	}
	post := &model.BlogPost{
		Slug:           r.Slug,
		Lang:           lang,
		Title:          r.Title,
		Summary:        r.Summary,
		CoverImage:     r.CoverImage,
		Body:           r.Body,
		Tags:           model.StringList(r.Tags),
		Status:         status,
		ScheduledAt:    r.ScheduledAt,
		SeoTitle:       r.SeoTitle,
		SeoDescription: r.SeoDescription,
		PublishedAt:    r.PublishedAt,
		CreatedBy:      createdBy,
	}
	// Publishing without an explicit timestamp stamps it now.
	if post.Status == model.BlogStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return post
}

type UpdateBlogPostRequest struct {
	Slug       *string   `json:"slug" validate:"omitempty,max=255"`
	Lang       *string   `json:"lang" validate:"omitempty,oneof=en ar"`
	Title      *string   `json:"title"`
	Summary    *string   `json:"summary"`
	CoverImage *string   `json:"coverImage"`
	Body       *string   `json:"body"`
	Tags       *[]string `json:"tags"`
	Status     *string   `json:"status" validate:"omitempty,oneof=draft review scheduled published"`

	ScheduledAt *time.Time `json:"scheduledAt"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`

	PublishedAt *time.Time `json:"publishedAt"`
}

func (r *UpdateBlogPostRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	setString(updates, "slug", r.Slug)
	setString(updates, "lang", r.Lang)
	setString(updates, "title", r.Title)
	setString(updates, "summary", r.Summary)
	setString(updates, "cover_image", r.CoverImage)
	setString(updates, "body", r.Body)
	setString(updates, "status", r.Status)
	setString(updates, "seo_title", r.SeoTitle)
	setString(updates, "seo_description", r.SeoDescription)
	setStringList(updates, "tags", r.Tags)
	if r.ScheduledAt != nil {
		updates["scheduled_at"] = *r.ScheduledAt
	}
	if r.PublishedAt != nil {
		updates["published_at"] = *r.PublishedAt
	}
	return updates
}

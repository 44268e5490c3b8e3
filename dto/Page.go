package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"eibs-cms/model"
)

type CreatePageRequest struct {
	Slug    string          `json:"slug" validate:"required,max=255"`
	Lang    string          `json:"lang" validate:"omitempty,oneof=en ar"`
	Title   string          `json:"title" validate:"required"`
	Content json.RawMessage `json:"content"`
	Status  string          `json:"status" validate:"omitempty,oneof=draft published"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`
}

func (r *CreatePageRequest) ToModel(createdBy *uuid.UUID) *model.Page {
	lang := model.Language(r.Lang)
	if lang == "" {
		lang = model.LangEnglish
	}
	status := model.PageStatus(r.Status)
	if status == "" {
		status = model.PageStatusDraft
	}
	return &model.Page{
		Slug:           r.Slug,
		Lang:           lang,
		Title:          r.Title,
		Content:        model.JSONDocument(r.Content),
		Status:         status,
		SeoTitle:       r.SeoTitle,
		SeoDescription: r.SeoDescription,
		CreatedBy:      createdBy,
	}
}

type UpdatePageRequest struct {
	Slug    *string         `json:"slug" validate:"omitempty,max=255"`
	Lang    *string         `json:"lang" validate:"omitempty,oneof=en ar"`
	Title   *string         `json:"title"`
	Content json.RawMessage `json:"content"`
	Status  *string         `json:"status" validate:"omitempty,oneof=draft published"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`
}

func (r *UpdatePageRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	setString(updates, "slug", r.Slug)
	setString(updates, "lang", r.Lang)
	setString(updates, "title", r.Title)
	setString(updates, "status", r.Status)
	setString(updates, "seo_title", r.SeoTitle)
	setString(updates, "seo_description", r.SeoDescription)
	if r.Content != nil {
		updates["content"] = model.JSONDocument(r.Content)
	}
	return updates
}

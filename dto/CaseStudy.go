package dto

import (
	"github.com/google/uuid"

	"eibs-cms/model"
)

// CreateCaseStudyRequest carries a full new case study. Server-assigned
// fields (id, createdAt, updatedAt) are absent by design.
type CreateCaseStudyRequest struct {
	Slug     string   `json:"slug" validate:"required,max=255"`
	Lang     string   `json:"lang" validate:"omitempty,oneof=en ar"`
	Title    string   `json:"title" validate:"required"`
	Summary  string   `json:"summary" validate:"required"`
	Client   string   `json:"client" validate:"required"`
	Industry []string `json:"industry" validate:"required"`
	Region   string   `json:"region" validate:"required"`
	Year     int      `json:"year" validate:"required"`
	Services []string `json:"services" validate:"required"`

	Deliverables []string               `json:"deliverables"`
	Timeline     *string                `json:"timeline"`
	Links        map[string]interface{} `json:"links"`
	CoverImage   string                 `json:"coverImage" validate:"required"`
	Gallery      []string               `json:"gallery"`
	Videos       []string               `json:"videos"`
	Models3d     []string               `json:"models3d"`
	BeforeAfter  map[string]interface{} `json:"beforeAfter"`

	Challenge           *string `json:"challenge"`
	Strategy            *string `json:"strategy"`
	SolutionBrand       *string `json:"solutionBrand"`
	SolutionPackaging   *string `json:"solutionPackaging"`
	SolutionSocialVideo *string `json:"solutionSocialVideo"`
	SolutionWeb         *string `json:"solutionWeb"`
	Solution3d          *string `json:"solution3d"`
	Execution           *string `json:"execution"`

	ImpactKpis []model.Kpi `json:"impactKpis"`
	Featured   bool        `json:"featured"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`
	OgImage        *string `json:"ogImage"`
}

// ToModel builds the record; createdBy comes from the authenticated user,
// not from the request body.
func (r *CreateCaseStudyRequest) ToModel(createdBy *uuid.UUID) *model.CaseStudy {
	lang := model.Language(r.Lang)
	if lang == "" {
		lang = model.LangEnglish
	}
	return &model.CaseStudy{
		Slug:                r.Slug,
		Lang:                lang,
		Title:               r.Title,
		Summary:             r.Summary,
		Client:              r.Client,
		Industry:            model.StringList(r.Industry),
		Region:              r.Region,
		Year:                r.Year,
		Services:            model.StringList(r.Services),
		Deliverables:        model.StringList(r.Deliverables),
		Timeline:            r.Timeline,
		Links:               model.JSONMap(r.Links),
		CoverImage:          r.CoverImage,
		Gallery:             model.StringList(r.Gallery),
		Videos:              model.StringList(r.Videos),
		Models3d:            model.StringList(r.Models3d),
		BeforeAfter:         model.JSONMap(r.BeforeAfter),
		Challenge:           r.Challenge,
		Strategy:            r.Strategy,
		SolutionBrand:       r.SolutionBrand,
		SolutionPackaging:   r.SolutionPackaging,
		SolutionSocialVideo: r.SolutionSocialVideo,
		SolutionWeb:         r.SolutionWeb,
		Solution3d:          r.Solution3d,
		Execution:           r.Execution,
		ImpactKpis:          model.KpiList(r.ImpactKpis),
		Featured:            r.Featured,
		SeoTitle:            r.SeoTitle,
		SeoDescription:      r.SeoDescription,
		OgImage:             r.OgImage,
		CreatedBy:           createdBy,
	}
}

// UpdateCaseStudyRequest accepts any subset of the mutable fields. Absent
// fields stay untouched (merge semantics).
type UpdateCaseStudyRequest struct {
	Slug     *string   `json:"slug" validate:"omitempty,max=255"`
	Lang     *string   `json:"lang" validate:"omitempty,oneof=en ar"`
	Title    *string   `json:"title"`
	Summary  *string   `json:"summary"`
	Client   *string   `json:"client"`
	Industry *[]string `json:"industry"`
	Region   *string   `json:"region"`
	Year     *int      `json:"year"`
	Services *[]string `json:"services"`

	Deliverables *[]string               `json:"deliverables"`
	Timeline     *string                 `json:"timeline"`
	Links        *map[string]interface{} `json:"links"`
	CoverImage   *string                 `json:"coverImage"`
	Gallery      *[]string               `json:"gallery"`
	Videos       *[]string               `json:"videos"`
	Models3d     *[]string               `json:"models3d"`
	BeforeAfter  *map[string]interface{} `json:"beforeAfter"`

	Challenge           *string `json:"challenge"`
	Strategy            *string `json:"strategy"`
	SolutionBrand       *string `json:"solutionBrand"`
	SolutionPackaging   *string `json:"solutionPackaging"`
	SolutionSocialVideo *string `json:"solutionSocialVideo"`
	SolutionWeb         *string `json:"solutionWeb"`
	Solution3d          *string `json:"solution3d"`
	Execution           *string `json:"execution"`

	ImpactKpis *[]model.Kpi `json:"impactKpis"`
	Featured   *bool        `json:"featured"`

	SeoTitle       *string `json:"seoTitle"`
	SeoDescription *string `json:"seoDescription"`
	OgImage        *string `json:"ogImage"`
}

// ToUpdates returns the supplied fields keyed by column name for a partial
// update.
func (r *UpdateCaseStudyRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	setString(updates, "slug", r.Slug)
	setString(updates, "lang", r.Lang)
	setString(updates, "title", r.Title)
	setString(updates, "summary", r.Summary)
	setString(updates, "client", r.Client)
	setString(updates, "region", r.Region)
	setString(updates, "timeline", r.Timeline)
	setString(updates, "cover_image", r.CoverImage)
	setString(updates, "challenge", r.Challenge)
	setString(updates, "strategy", r.Strategy)
	setString(updates, "solution_brand", r.SolutionBrand)
	setString(updates, "solution_packaging", r.SolutionPackaging)
	setString(updates, "solution_social_video", r.SolutionSocialVideo)
	setString(updates, "solution_web", r.SolutionWeb)
	setString(updates, "solution_3d", r.Solution3d)
	setString(updates, "execution", r.Execution)
	setString(updates, "seo_title", r.SeoTitle)
	setString(updates, "seo_description", r.SeoDescription)
	setString(updates, "og_image", r.OgImage)
	if r.Year != nil {
		updates["year"] = *r.Year
	}
	if r.Featured != nil {
		updates["featured"] = *r.Featured
	}
	setStringList(updates, "industry", r.Industry)
	setStringList(updates, "services", r.Services)
	setStringList(updates, "deliverables", r.Deliverables)
	setStringList(updates, "gallery", r.Gallery)
	setStringList(updates, "videos", r.Videos)
	setStringList(updates, "models_3d", r.Models3d)
	if r.Links != nil {
		updates["links"] = model.JSONMap(*r.Links)
	}
	if r.BeforeAfter != nil {
		updates["before_after"] = model.JSONMap(*r.BeforeAfter)
	}
	if r.ImpactKpis != nil {
		updates["impact_kpis"] = model.KpiList(*r.ImpactKpis)
	}
	return updates
}

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setStringList(updates map[string]interface{}, column string, v *[]string) {
	if v != nil {
		updates[column] = model.StringList(*v)
	}
}

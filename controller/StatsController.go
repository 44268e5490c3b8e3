package controller

import (
	"github.com/gofiber/fiber/v2"

	"eibs-cms/dto"
	"eibs-cms/repository"
)

type StatsController struct {
	pages       repository.PageRepository
	caseStudies repository.CaseStudyRepository
	blogPosts   repository.BlogPostRepository
	submissions repository.ContactSubmissionRepository
}

func NewStatsController(
	pages repository.PageRepository,
	caseStudies repository.CaseStudyRepository,
	blogPosts repository.BlogPostRepository,
	submissions repository.ContactSubmissionRepository,
) *StatsController {
	return &StatsController{
		pages:       pages,
		caseStudies: caseStudies,
		blogPosts:   blogPosts,
		submissions: submissions,
	}
}

// Get godoc
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.Stats
// @Failure      401  {object}  map[string]string
// @Router       /admin/stats [get]
func (sc *StatsController) Get(c *fiber.Ctx) error {
	var stats dto.Stats
	var err error

	if stats.Pages, err = sc.pages.Count(); err != nil {
		return internalError(c, "failed to fetch stats", err)
	}
	if stats.CaseStudies, err = sc.caseStudies.Count(); err != nil {
		return internalError(c, "failed to fetch stats", err)
	}
	if stats.BlogPosts, err = sc.blogPosts.Count(); err != nil {
		return internalError(c, "failed to fetch stats", err)
	}
	if stats.ContactSubmissions, err = sc.submissions.Count(); err != nil {
		return internalError(c, "failed to fetch stats", err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

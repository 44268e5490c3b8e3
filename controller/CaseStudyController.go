package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eibs-cms/dto"
	"eibs-cms/middleware"
	"eibs-cms/repository"
	"eibs-cms/util"
)

type CaseStudyController struct {
	repo repository.CaseStudyRepository
}

func NewCaseStudyController(repo repository.CaseStudyRepository) *CaseStudyController {
	return &CaseStudyController{repo: repo}
}

// List godoc
// @Summary      List case studies
// @Tags         case-studies
// @Produce      json
// @Param        lang query string false "Filter by language (en|ar)"
// @Success      200  {array}  model.CaseStudy
// @Router       /case-studies [get]
func (cc *CaseStudyController) List(c *fiber.Ctx) error {
	studies, err := cc.repo.GetAll(c.Query("lang"))
	if err != nil {
		return internalError(c, "failed to fetch case studies", err)
	}
	return c.Status(fiber.StatusOK).JSON(studies)
}

// Featured godoc
// @Summary      List featured case studies
// @Tags         case-studies
// @Produce      json
// @Param        lang query string false "Filter by language (en|ar)"
// @Success      200  {array}  model.CaseStudy
// @Router       /case-studies/featured [get]
func (cc *CaseStudyController) Featured(c *fiber.Ctx) error {
	studies, err := cc.repo.GetFeatured(c.Query("lang"))
	if err != nil {
		return internalError(c, "failed to fetch featured case studies", err)
	}
	return c.Status(fiber.StatusOK).JSON(studies)
}

// GetBySlug godoc
// @Summary      Get a case study by slug
// @Tags         case-studies
// @Produce      json
// @Param        slug path string true "Case study slug"
// @Success      200  {object}  model.CaseStudy
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{slug} [get]
func (cc *CaseStudyController) GetBySlug(c *fiber.Ctx) error {
	cs, err := cc.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "case study not found"})
		}
		return internalError(c, "failed to fetch case study", err)
	}
	return c.Status(fiber.StatusOK).JSON(cs)
}

// GetByID returns one case study for the admin edit screen.
func (cc *CaseStudyController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	cs, err := cc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "case study not found"})
		}
		return internalError(c, "failed to fetch case study", err)
	}
	return c.Status(fiber.StatusOK).JSON(cs)
}

// Create godoc
// @Summary      Create a case study
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload body dto.CreateCaseStudyRequest true "Case study payload"
// @Success      201  {object}  model.CaseStudy
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/case-studies [post]
func (cc *CaseStudyController) Create(c *fiber.Ctx) error {
	var req dto.CreateCaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid case study data", err)
	}

	cs := req.ToModel(currentUserID(c))
	if err := cc.repo.Create(cs); err != nil {
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to create case study", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cs)
}

// Update godoc
// @Summary      Partially update a case study
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Case study id"
// @Param        payload body dto.UpdateCaseStudyRequest true "Fields to update"
// @Success      200  {object}  model.CaseStudy
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/case-studies/{id} [patch]
func (cc *CaseStudyController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}

	var req dto.UpdateCaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid case study data", err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return cc.GetByID(c)
	}

	cs, err := cc.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "case study not found"})
		}
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to update case study", err)
	}
	return c.Status(fiber.StatusOK).JSON(cs)
}

// Delete godoc
// @Summary      Delete a case study
// @Tags         admin
// @Param        id path string true "Case study id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/case-studies/{id} [delete]
func (cc *CaseStudyController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	if err := cc.repo.Delete(id); err != nil {
		return internalError(c, "failed to delete case study", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func currentUserID(c *fiber.Ctx) *uuid.UUID {
	if user := middleware.CurrentUser(c); user != nil {
		id := user.ID
		return &id
	}
	return nil
}

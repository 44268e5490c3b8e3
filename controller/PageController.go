package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eibs-cms/dto"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/util"
)

type PageController struct {
	repo repository.PageRepository
}

func NewPageController(repo repository.PageRepository) *PageController {
	return &PageController{repo: repo}
}

// GetPublishedBySlug serves a CMS page to the public site. Draft pages are
// indistinguishable from missing ones.
func (pc *PageController) GetPublishedBySlug(c *fiber.Ctx) error {
	page, err := pc.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "page not found"})
		}
		return internalError(c, "failed to fetch page", err)
	}
	if page.Status != model.PageStatusPublished {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "page not found"})
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// ListAdmin godoc
// @Summary      List pages (admin)
// @Tags         admin
// @Produce      json
// @Param        lang query string false "Filter by language (en|ar)"
// @Success      200  {array}  model.Page
// @Router       /admin/pages [get]
func (pc *PageController) ListAdmin(c *fiber.Ctx) error {
	pages, err := pc.repo.GetAll(c.Query("lang"))
	if err != nil {
		return internalError(c, "failed to fetch pages", err)
	}
	return c.Status(fiber.StatusOK).JSON(pages)
}

// GetByID returns one page for the admin edit screen.
func (pc *PageController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	page, err := pc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "page not found"})
		}
		return internalError(c, "failed to fetch page", err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// Create godoc
// @Summary      Create a page
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload body dto.CreatePageRequest true "Page payload"
// @Success      201  {object}  model.Page
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/pages [post]
func (pc *PageController) Create(c *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid page data", err)
	}

	page := req.ToModel(currentUserID(c))
	if err := pc.repo.Create(page); err != nil {
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to create page", err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

// Update godoc
// @Summary      Partially update a page
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Page id"
// @Param        payload body dto.UpdatePageRequest true "Fields to update"
// @Success      200  {object}  model.Page
// @Failure      404  {object}  map[string]string
// @Router       /admin/pages/{id} [patch]
func (pc *PageController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}

	var req dto.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid page data", err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return pc.GetByID(c)
	}

	page, err := pc.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "page not found"})
		}
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to update page", err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// Delete godoc
// @Summary      Delete a page
// @Tags         admin
// @Param        id path string true "Page id"
// @Success      204
// @Router       /admin/pages/{id} [delete]
func (pc *PageController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	if err := pc.repo.Delete(id); err != nil {
		return internalError(c, "failed to delete page", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

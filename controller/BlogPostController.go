package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eibs-cms/dto"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/util"
)

type BlogPostController struct {
	repo repository.BlogPostRepository
}

func NewBlogPostController(repo repository.BlogPostRepository) *BlogPostController {
	return &BlogPostController{repo: repo}
}

// ListPublished godoc
// @Summary      List published blog posts
// @Tags         blog-posts
// @Produce      json
// @Param        lang query string false "Filter by language (en|ar)"
// @Success      200  {array}  model.BlogPost
// @Router       /blog-posts [get]
func (bc *BlogPostController) ListPublished(c *fiber.Ctx) error {
	posts, err := bc.repo.GetAll(c.Query("lang"), string(model.BlogStatusPublished))
	if err != nil {
		return internalError(c, "failed to fetch blog posts", err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPublishedBySlug godoc
// @Summary      Get a published blog post by slug
// @Description  Unpublished posts are indistinguishable from missing ones.
// @Tags         blog-posts
// @Produce      json
// @Param        slug path string true "Blog post slug"
// @Success      200  {object}  model.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /blog-posts/{slug} [get]
func (bc *BlogPostController) GetPublishedBySlug(c *fiber.Ctx) error {
	post, err := bc.repo.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blog post not found"})
		}
		return internalError(c, "failed to fetch blog post", err)
	}
	if post.Status != model.BlogStatusPublished {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blog post not found"})
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// ListAdmin lists posts in any status, optionally filtered by lang and
// status query parameters.
func (bc *BlogPostController) ListAdmin(c *fiber.Ctx) error {
	posts, err := bc.repo.GetAll(c.Query("lang"), c.Query("status"))
	if err != nil {
		return internalError(c, "failed to fetch blog posts", err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetByID returns one post for the admin edit screen.
func (bc *BlogPostController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	post, err := bc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blog post not found"})
		}
		return internalError(c, "failed to fetch blog post", err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// Create godoc
// @Summary      Create a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload body dto.CreateBlogPostRequest true "Blog post payload"
// @Success      201  {object}  model.BlogPost
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/blog-posts [post]
func (bc *BlogPostController) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid blog post data", err)
	}

	post := req.ToModel(currentUserID(c))
	if err := bc.repo.Create(post); err != nil {
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to create blog post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Update godoc
// @Summary      Partially update a blog post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Blog post id"
// @Param        payload body dto.UpdateBlogPostRequest true "Fields to update"
// @Success      200  {object}  model.BlogPost
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/blog-posts/{id} [patch]
func (bc *BlogPostController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}

	var req dto.UpdateBlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid blog post data", err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return bc.GetByID(c)
	}

	// Transitioning to published without an explicit timestamp stamps it
	// now, once.
	if req.Status != nil && model.BlogPostStatus(*req.Status) == model.BlogStatusPublished && req.PublishedAt == nil {
		existing, err := bc.repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blog post not found"})
			}
			return internalError(c, "failed to fetch blog post", err)
		}
		if existing.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	post, err := bc.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "blog post not found"})
		}
		if util.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "slug already exists"})
		}
		return internalError(c, "failed to update blog post", err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         admin
// @Param        id path string true "Blog post id"
// @Success      204
// @Router       /admin/blog-posts/{id} [delete]
func (bc *BlogPostController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}
	if err := bc.repo.Delete(id); err != nil {
		return internalError(c, "failed to delete blog post", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

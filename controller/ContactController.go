package controller

import (
	"github.com/gofiber/fiber/v2"

	"eibs-cms/dto"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/service"
	"eibs-cms/util"
)

type ContactController struct {
	repo     repository.ContactSubmissionRepository
	emailSvc *service.EmailService
}

func NewContactController(repo repository.ContactSubmissionRepository, emailSvc *service.EmailService) *ContactController {
	return &ContactController{repo: repo, emailSvc: emailSvc}
}

// Create godoc
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload body dto.CreateContactRequest true "Contact payload"
// @Success      201  {object}  dto.CreateContactResponse
// @Failure      400  {object}  map[string]interface{}
// @Router       /contact [post]
func (cc *ContactController) Create(c *fiber.Ctx) error {
	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid submission data", err)
	}

	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  model.SubmissionNew,
	}
	if err := cc.repo.Create(sub); err != nil {
		return internalError(c, "failed to submit contact form", err)
	}

	cc.emailSvc.NotifyContactSubmission(sub)

	return c.Status(fiber.StatusCreated).JSON(dto.CreateContactResponse{
		Success: true,
		ID:      sub.ID.String(),
	})
}

// List godoc
// @Summary      List contact submissions
// @Tags         admin
// @Produce      json
// @Success      200  {array}  model.ContactSubmission
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/contact-submissions [get]
func (cc *ContactController) List(c *fiber.Ctx) error {
	subs, err := cc.repo.GetAll()
	if err != nil {
		return internalError(c, "failed to fetch contact submissions", err)
	}
	return c.Status(fiber.StatusOK).JSON(subs)
}

// UpdateStatus godoc
// @Summary      Update a submission's triage status
// @Tags         admin
// @Accept       json
// @Param        id path string true "Submission id"
// @Param        payload body dto.UpdateSubmissionStatusRequest true "New status (read|replied)"
// @Success      204
// @Failure      400  {object}  map[string]interface{}
// @Router       /admin/contact-submissions/{id}/status [patch]
func (cc *ContactController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badID(c)
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid status", err)
	}

	if err := cc.repo.UpdateStatus(id, model.SubmissionStatus(req.Status)); err != nil {
		return internalError(c, "failed to update status", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

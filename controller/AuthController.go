package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eibs-cms/dto"
	"eibs-cms/middleware"
	"eibs-cms/service"
	"eibs-cms/util"
)

// AuthController provides handlers for authentication
type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{svc: s}
}

// Login godoc
// @Summary      Login with email and password
// @Description  Validates credentials and returns the user plus a bearer token. Unknown email and wrong password produce the same generic 401.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload body dto.LoginRequest true "Login payload"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid login data", err)
	}

	res, err := ac.svc.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		return internalError(c, "login failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// Me godoc
// @Summary      Current authenticated user
// @Tags         auth
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200  {object}  model.User
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

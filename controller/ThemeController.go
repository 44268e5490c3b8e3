package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eibs-cms/dto"
	"eibs-cms/model"
	"eibs-cms/repository"
	"eibs-cms/util"
)

type ThemeController struct {
	repo repository.SettingRepository
}

func NewThemeController(repo repository.SettingRepository) *ThemeController {
	return &ThemeController{repo: repo}
}

// Get godoc
// @Summary      Read the current theme tokens
// @Description  Falls back to the built-in brand colors when no theme has been saved.
// @Tags         theme
// @Produce      json
// @Success      200  {object}  dto.Theme
// @Router       /theme [get]
func (tc *ThemeController) Get(c *fiber.Ctx) error {
	setting, err := tc.repo.Get(model.SettingKeyTheme)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(dto.DefaultTheme())
		}
		return internalError(c, "failed to fetch theme", err)
	}

	var theme dto.Theme
	if err := json.Unmarshal(setting.Value, &theme); err != nil || theme.Primary == "" {
		return c.Status(fiber.StatusOK).JSON(dto.DefaultTheme())
	}
	return c.Status(fiber.StatusOK).JSON(theme)
}

// Update godoc
// @Summary      Save new theme tokens
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload body dto.Theme true "Theme colors, 6-digit hex"
// @Success      200  {object}  dto.Theme
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/theme [put]
func (tc *ThemeController) Update(c *fiber.Ctx) error {
	var req dto.Theme
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request payload"})
	}
	if err := util.ValidateStruct(&req); err != nil {
		return validationFailure(c, "invalid theme data", err)
	}

	value, err := json.Marshal(req)
	if err != nil {
		return internalError(c, "failed to save theme", err)
	}
	setting := &model.Setting{
		Key:   model.SettingKeyTheme,
		Value: model.JSONDocument(value),
	}
	if err := tc.repo.Upsert(setting); err != nil {
		return internalError(c, "failed to save theme", err)
	}
	return c.Status(fiber.StatusOK).JSON(req)
}

package api

import (
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// I18nHandler handles i18n-related requests
type I18nHandler struct{}

// GetTranslations returns translations for the client-side JavaScript
func (h *I18nHandler) GetTranslations(c *fiber.Ctx) error {
	lang := c.Params("lang")

	// Only allow supported languages
	if lang != "ja" {
		lang = "en"
	}

	localizer := utils.GetLocalizer(lang)

	translations := map[string]string{
		"error_name_subjects_required": utils.T(localizer, "error_name_subjects_required"),
		"error_user_not_found":         utils.T(localizer, "error_user_not_found"),
		"error_not_authenticated":      utils.T(localizer, "error_not_authenticated"),
		"error_invalid_users":          utils.T(localizer, "error_invalid_users"),
		"error_missing_fields":         utils.T(localizer, "error_missing_fields"),
		"error_404":                    utils.T(localizer, "error_404"),
		"error_500":                    utils.T(localizer, "error_500"),
		"buddy_new_message":            utils.T(localizer, "buddy_new_message"),
		"buddy_new_match":              utils.T(localizer, "buddy_new_match"),
	}

	return c.JSON(translations)
}

package middleware

import (
	"strings"

	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// LocaleMiddleware detects the client's language and stores a localizer
// in the request context for error messages.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Query parameter wins
		lang := c.Query("lang")

		// 2. Then the cookie
		if lang == "" {
			lang = c.Cookies("lang")
		}

		// 3. Then Accept-Language
		if lang == "" {
			if strings.HasPrefix(c.Get("Accept-Language"), "ja") {
				lang = "ja"
			}
		}

		// Only en and ja are shipped
		if lang != "ja" {
			lang = "en"
		}

		c.Locals("localizer", utils.GetLocalizer(lang))
		c.Locals("lang", lang)

		return c.Next()
	}
}

package middleware

import (
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// HeaderSessionToken is the fixed header carrying the session token.
// The name matches what the web client sends.
const HeaderSessionToken = "Sessiontoken"

// RequireSession resolves the session token header and stores the
// authenticated user ID in c.Locals("userID"). Requests with a missing
// or unknown token get a 401.
func RequireSession(sessions *storage.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderSessionToken)
		userID, err := sessions.Resolve(token)
		if err != nil {
			return utils.UnauthenticatedError(utils.T(localizerFrom(c), "error_not_authenticated"), err)
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

func localizerFrom(c *fiber.Ctx) *i18n.Localizer {
	if l, ok := c.Locals("localizer").(*i18n.Localizer); ok {
		return l
	}
	return nil
}

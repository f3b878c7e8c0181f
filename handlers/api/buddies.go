package api

import (
	"errors"

	"studybuddy/matchmaking"
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// BuddyHandler serves subject listings, buddy matches and ranked
// recommendations.
type BuddyHandler struct {
	users  *storage.UserStore
	engine *matchmaking.Engine
}

// NewBuddyHandler creates a new instance of BuddyHandler
func NewBuddyHandler(users *storage.UserStore, engine *matchmaking.Engine) *BuddyHandler {
	return &BuddyHandler{
		users:  users,
		engine: engine,
	}
}

// HandleSubjects lists every subject in the system, deduplicated
func (h *BuddyHandler) HandleSubjects(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"subjects": h.users.AllSubjects()})
}

// HandleBuddies lists users sharing at least one subject with the caller
func (h *BuddyHandler) HandleBuddies(c *fiber.Ctx) error {
	matches, err := h.engine.Matches(userIDFrom(c))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), err)
		}
		return utils.InternalServerError(utils.T(localizerFrom(c), "error_500"), err)
	}

	return c.JSON(fiber.Map{"matches": matches})
}

// HandleRecommendations lists buddy suggestions ranked by shared
// subject count
func (h *BuddyHandler) HandleRecommendations(c *fiber.Ctx) error {
	recs, err := h.engine.Recommendations(userIDFrom(c))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), err)
		}
		return utils.InternalServerError(utils.T(localizerFrom(c), "error_500"), err)
	}

	return c.JSON(fiber.Map{"recommendations": recs})
}

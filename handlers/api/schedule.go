package api

import (
	"studybuddy/middleware"
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler handles the study schedule endpoints
type ScheduleHandler struct {
	users    *storage.UserStore
	sessions *storage.SessionStore
}

// NewScheduleHandler creates a new instance of ScheduleHandler
func NewScheduleHandler(users *storage.UserStore, sessions *storage.SessionStore) *ScheduleHandler {
	return &ScheduleHandler{
		users:    users,
		sessions: sessions,
	}
}

type addReminderRequest struct {
	Title    string `json:"title"`
	Datetime string `json:"datetime"`
}

// HandleAdd appends a reminder to the caller's schedule. A bad session
// and missing fields are all reported as a 400.
func (h *ScheduleHandler) HandleAdd(c *fiber.Ctx) error {
	userID, err := h.sessions.Resolve(c.Get(middleware.HeaderSessionToken))
	if err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_missing_fields"), err)
	}

	var req addReminderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_missing_fields"), err)
	}
	if req.Title == "" || req.Datetime == "" {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_missing_fields"), nil)
	}

	// Datetime is stored verbatim; the client owns its format.
	reminder, err := h.users.AppendReminder(userID, req.Title, req.Datetime)
	if err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_missing_fields"), err)
	}

	return c.JSON(fiber.Map{"reminder": reminder})
}

// HandleList returns the caller's reminders in creation order
func (h *ScheduleHandler) HandleList(c *fiber.Ctx) error {
	schedule, err := h.users.Schedule(userIDFrom(c))
	if err != nil {
		return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), err)
	}

	return c.JSON(fiber.Map{"schedule": schedule})
}

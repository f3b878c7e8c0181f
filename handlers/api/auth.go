package api

import (
	"encoding/json"

	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	users    *storage.UserStore
	sessions *storage.SessionStore
	hub      *NotificationHub
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(users *storage.UserStore, sessions *storage.SessionStore, hub *NotificationHub) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		hub:      hub,
	}
}

type signupRequest struct {
	Name     string          `json:"name"`
	Subjects json.RawMessage `json:"subjects"`
}

// HandleSignup creates a profile and returns its ID
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_name_subjects_required"), err)
	}

	name := utils.CleanName(req.Name)
	subjects := utils.CleanSubjects(parseSubjects(req.Subjects))

	user, err := h.users.CreateUser(name, subjects)
	if err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_name_subjects_required"), err)
	}

	utils.Log.Info("New signup: %s (%d subjects)", user.ID, len(user.Subjects))

	if h.hub != nil {
		h.hub.NotifyNewBuddy(user)
	}

	return c.JSON(fiber.Map{"userId": user.ID})
}

type loginRequest struct {
	UserID string `json:"userId"`
}

// HandleLogin issues a fresh session token for an existing user.
// Previously issued tokens stay valid.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), err)
	}

	if !h.users.Exists(req.UserID) {
		return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), nil)
	}

	token, err := h.sessions.Create(req.UserID)
	if err != nil {
		return utils.InternalServerError(utils.T(localizerFrom(c), "error_500"), err)
	}

	return c.JSON(fiber.Map{"sessionToken": token})
}

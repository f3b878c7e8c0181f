package api

import (
	"studybuddy/middleware"
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles the chat endpoints
type MessageHandler struct {
	users    *storage.UserStore
	sessions *storage.SessionStore
	hub      *NotificationHub
}

// NewMessageHandler creates a new instance of MessageHandler
func NewMessageHandler(users *storage.UserStore, sessions *storage.SessionStore, hub *NotificationHub) *MessageHandler {
	return &MessageHandler{
		users:    users,
		sessions: sessions,
		hub:      hub,
	}
}

type sendMessageRequest struct {
	ToUserID string `json:"toUserId"`
	Text     string `json:"text"`
}

// HandleSend appends one message value to both the sender's and the
// recipient's inbox. A bad session and an unknown recipient are both
// reported as a 400 here, so this route does not sit behind the 401
// middleware.
func (h *MessageHandler) HandleSend(c *fiber.Ctx) error {
	fromID, err := h.sessions.Resolve(c.Get(middleware.HeaderSessionToken))
	if err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_invalid_users"), err)
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_invalid_users"), err)
	}

	// Text may be empty; only the participants are validated.
	msg, err := h.users.AppendMessage(fromID, req.ToUserID, req.Text)
	if err != nil {
		return utils.ValidationError(utils.T(localizerFrom(c), "error_invalid_users"), err)
	}

	if h.hub != nil {
		h.hub.NotifyNewMessage(msg)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": msg,
	})
}

// HandleList returns the caller's full inbox in insertion order. The
// client filters by counterpart.
func (h *MessageHandler) HandleList(c *fiber.Ctx) error {
	inbox, err := h.users.Inbox(userIDFrom(c))
	if err != nil {
		return utils.NotFoundError(utils.T(localizerFrom(c), "error_user_not_found"), err)
	}

	return c.JSON(fiber.Map{"messages": inbox})
}

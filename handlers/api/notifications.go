package api

import (
	"bufio"
	"encoding/json"
	"sync"
	"time"

	"studybuddy/middleware"
	"studybuddy/models"
	"studybuddy/storage"
	"studybuddy/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// Notification is a real-time event pushed to connected clients
type Notification struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"` // "new_message", "new_buddy"
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Time    time.Time              `json:"time"`
}

// NotificationHub fans events out to each user's live connections over
// SSE or WebSocket. Delivery is best-effort: a subscriber whose channel
// is full misses the event.
type NotificationHub struct {
	sessions    *storage.SessionStore
	mu          sync.RWMutex
	subscribers map[string]map[string]chan Notification // user ID -> subscriber ID -> channel
}

// NewNotificationHub creates a hub resolving tokens against the given
// session store.
func NewNotificationHub(sessions *storage.SessionStore) *NotificationHub {
	return &NotificationHub{
		sessions:    sessions,
		subscribers: make(map[string]map[string]chan Notification),
	}
}

func (h *NotificationHub) subscribe(userID string) (string, chan Notification) {
	subscriberID := uuid.New().String()
	ch := make(chan Notification, 10)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[string]chan Notification)
	}
	h.subscribers[userID][subscriberID] = ch
	h.mu.Unlock()

	return subscriberID, ch
}

func (h *NotificationHub) unsubscribe(userID, subscriberID string) {
	h.mu.Lock()
	if subs, ok := h.subscribers[userID]; ok {
		if ch, ok := subs[subscriberID]; ok {
			delete(subs, subscriberID)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.subscribers, userID)
		}
	}
	h.mu.Unlock()
}

// resolveToken accepts the token from the session header or, for
// EventSource clients that cannot set headers, a query parameter.
func (h *NotificationHub) resolveToken(c *fiber.Ctx) (string, error) {
	token := c.Get(middleware.HeaderSessionToken)
	if token == "" {
		token = c.Query("sessiontoken")
	}
	return h.sessions.Resolve(token)
}

// HandleSSE streams notifications for the authenticated user as
// Server-Sent Events.
func (h *NotificationHub) HandleSSE(c *fiber.Ctx) error {
	userID, err := h.resolveToken(c)
	if err != nil {
		return utils.UnauthenticatedError(utils.T(localizerFrom(c), "error_not_authenticated"), err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	subscriberID, ch := h.subscribe(userID)
	log := utils.Log.WithField("user", userID)
	log.Info("SSE subscriber connected: %s", subscriberID)

	ctx := c.Context()
	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			h.unsubscribe(userID, subscriberID)
			log.Info("SSE subscriber disconnected: %s", subscriberID)
		}()

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case notification, ok := <-ch:
				if !ok {
					return
				}
				data, _ := json.Marshal(notification)
				w.WriteString("data: " + string(data) + "\n\n")
				if err := w.Flush(); err != nil {
					return
				}

			case <-ticker.C:
				w.WriteString(": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}))

	return nil
}

// HandleWebSocketUpgrade guards the WebSocket route: the sessiontoken
// query parameter must resolve before the upgrade is allowed to proceed.
// EventSource and WebSocket clients cannot set custom headers, hence the
// query parameter.
func (h *NotificationHub) HandleWebSocketUpgrade(c *fiber.Ctx) error {
	userID, err := h.sessions.Resolve(c.Query("sessiontoken"))
	if err != nil {
		return utils.UnauthenticatedError(utils.T(localizerFrom(c), "error_not_authenticated"), err)
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals("userID", userID)
	return c.Next()
}

// HandleWebSocket streams notifications over a WebSocket connection.
// The upgrade middleware has already resolved the token into locals.
func (h *NotificationHub) HandleWebSocket(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		c.Close()
		return
	}

	subscriberID, ch := h.subscribe(userID)
	log := utils.Log.WithField("user", userID)
	defer func() {
		h.unsubscribe(userID, subscriberID)
		c.Close()
		log.Info("WebSocket subscriber disconnected: %s", subscriberID)
	}()

	log.Info("WebSocket subscriber connected: %s", subscriberID)

	for notification := range ch {
		if err := c.WriteJSON(notification); err != nil {
			utils.Log.Error("Failed to send WebSocket notification: %v", err)
			break
		}
	}
}

// sendTo delivers a notification to every live connection of one user
func (h *NotificationHub) sendTo(userID string, notification Notification) {
	notification.ID = uuid.New().String()
	notification.Time = time.Now()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for subscriberID, ch := range h.subscribers[userID] {
		select {
		case ch <- notification:
		default:
			utils.Log.Warn("Notification channel full for subscriber %s", subscriberID)
		}
	}
}

// broadcast delivers a notification to every connected user except one
func (h *NotificationHub) broadcast(exceptUserID string, notification Notification) {
	h.mu.RLock()
	users := make([]string, 0, len(h.subscribers))
	for userID := range h.subscribers {
		if userID != exceptUserID {
			users = append(users, userID)
		}
	}
	h.mu.RUnlock()

	for _, userID := range users {
		h.sendTo(userID, notification)
	}
}

// NotifyNewMessage pushes a chat message to the recipient's connections
func (h *NotificationHub) NotifyNewMessage(msg models.Message) {
	h.sendTo(msg.To, Notification{
		Type:    "new_message",
		Message: "New message received",
		Data: map[string]interface{}{
			"from":      msg.From,
			"messageId": msg.ID,
			"text":      msg.Text,
		},
	})
}

// NotifyNewBuddy announces a fresh signup to everyone else online
func (h *NotificationHub) NotifyNewBuddy(user models.User) {
	h.broadcast(user.ID, Notification{
		Type:    "new_buddy",
		Message: "A new study buddy joined",
		Data: map[string]interface{}{
			"id":       user.ID,
			"name":     user.Name,
			"subjects": user.Subjects,
		},
	})
}

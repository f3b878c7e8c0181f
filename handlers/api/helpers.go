package api

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// parseSubjects accepts the two shapes the client may send: a JSON array
// of strings, or a single comma-joined string.
func parseSubjects(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return splitSubjects(joined)
	}

	return nil
}

// splitSubjects splits on commas, trims whitespace and drops empties.
func splitSubjects(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// userIDFrom returns the user ID placed in locals by the session
// middleware.
func userIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals("userID").(string); ok {
		return id
	}
	return ""
}

func localizerFrom(c *fiber.Ctx) *i18n.Localizer {
	if l, ok := c.Locals("localizer").(*i18n.Localizer); ok {
		return l
	}
	return nil
}

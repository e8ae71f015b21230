package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"greetapi/internal/service"
)

// Index returns the welcome page handler: a fixed HTML fragment containing
// the configured welcome string.
func Index(welcome string) fiber.Handler {
	body := fmt.Sprintf("<h1>%s</h1>", html.EscapeString(welcome))
	return func(c *fiber.Ctx) error {
		return c.Type("html").SendString(body)
	}
}

// GreetUser returns the personalized greeting handler for GET /:username.
// The response body always contains the (escaped) path segment. Recording the
// visit is best-effort: if the service fails for anything other than
// validation, the greeting still renders without the counter.
func GreetUser(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		visit, err := svc.Greet(c.UserContext(), username)
		if err != nil {
			if errors.Is(err, service.ErrUsernameRequired) || errors.Is(err, service.ErrInvalidUsername) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_USERNAME", "invalid username")
			}
			// Degraded mode: greet without the counter, but surface the failure
			logVisitRecordFailure(c, username, err)
			return c.Type("html").SendString(greetingHTML(username, 0))
		}
		return c.Type("html").SendString(greetingHTML(visit.Username, visit.Count))
	}
}

// logVisitRecordFailure emits one JSON log line when recording a visit fails.
// The greeting response itself stays 200, so this is the only trace of the
// outage in the request path.
func logVisitRecordFailure(c *fiber.Ctx, username string, err error) {
	entry := map[string]any{
		"ts":         time.Now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"component":  "handler",
		"event":      "visit_record_failed",
		"request_id": requestIDFromCtx(c),
		"username":   username,
		"error":      err.Error(),
	}
	if b, jerr := json.Marshal(entry); jerr == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}

func greetingHTML(username string, count int64) string {
	escaped := html.EscapeString(username)
	switch {
	case count <= 0:
		return fmt.Sprintf("<h1>Hello, %s!</h1>", escaped)
	case count == 1:
		return fmt.Sprintf("<h1>Hello, %s!</h1>\n<p>This is your first visit.</p>", escaped)
	default:
		return fmt.Sprintf("<h1>Hello, %s!</h1>\n<p>You have been greeted %d times.</p>", escaped, count)
	}
}

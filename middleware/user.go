package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser resolves the acting user for the request and stores it in
// Locals. A future auth layer replaces this resolution without touching
// handlers or repositories: they only ever see the threaded user id.
// Until then the configured default identifies the single desktop user,
// and X-User-ID overrides it for tooling.
func CurrentUser(defaultUserID int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := defaultUserID
		if header := c.Get("X-User-ID"); header != "" {
			parsed, err := strconv.ParseInt(header, 10, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid X-User-ID header",
				})
			}
			userID = parsed
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0
	}
	return userID
}

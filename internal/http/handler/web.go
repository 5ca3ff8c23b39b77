package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed web/index.html
var indexHTML []byte

// Index serves the single-page UI. The page drives the JSON API; it
// holds no state of its own beyond the current record and calculation
// IDs.
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(indexHTML)
	}
}

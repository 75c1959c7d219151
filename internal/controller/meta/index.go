package meta

import "github.com/gofiber/fiber/v2"

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the Roadmap Tracker API",
			"@links": fiber.Map{
				"catalog":  "/api/v1/catalog",
				"progress": "/api/v1/progress",
				"export":   "/api/v1/export",
				"health":   "/api/_/health",
			},
		})
	})
}

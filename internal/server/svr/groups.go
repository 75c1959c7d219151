package svr

import (
	"github.com/gofiber/fiber/v2"
)

// V1 is the JSON API.
type V1 struct {
	fiber.Router
}

// Meta serves health and build information.
type Meta struct {
	fiber.Router
}

// View serves the server-rendered checklist pages.
type View struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*V1, *Meta, *View) {
	v1 := app.Group("/api/v1")
	meta := app.Group("/api/_")
	view := app.Group("/")

	return &V1{Router: v1}, &Meta{Router: meta}, &View{Router: view}
}

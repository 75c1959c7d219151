package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/pkg/cachectrl"
	"exusiai.dev/roadmap-tracker/internal/server/svr"
	"exusiai.dev/roadmap-tracker/internal/service"
)

type Catalog struct {
	fx.In

	CatalogService *service.Catalog
}

func RegisterCatalog(v1 *svr.V1, c Catalog) {
	v1.Get("/catalog", cache.New(cache.Config{
		Expiration: time.Minute,
	}), c.GetCatalog)
	v1.Get("/search", c.Search)
}

func (c Catalog) GetCatalog(ctx *fiber.Ctx) error {
	cachectrl.OptIn(ctx, c.CatalogService.LoadedAt())
	return ctx.JSON(c.CatalogService.GetCatalog())
}

func (c Catalog) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	results := c.CatalogService.Search(query)
	return ctx.JSON(fiber.Map{
		"query":   query,
		"results": results,
	})
}

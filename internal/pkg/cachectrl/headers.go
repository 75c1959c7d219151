package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn marks the response as publicly cacheable for an hour, last modified at t.
func OptIn(ctx *fiber.Ctx, t time.Time) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(time.Hour.Seconds())))
	ctx.Response().Header.SetLastModified(t)
}

// OptOut forbids caching of the response.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

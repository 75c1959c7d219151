package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/roadmap-tracker/internal/pkg/flog"
)

const RequestIDHeader = "X-Tracker-Request-ID"

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Str("component", "httpreq").Logger()),
		flog.RequestIDHandler("request_id", RequestIDHeader),
		flog.FieldHandler("ip", func(ctx *fiber.Ctx) string { return ctx.IP() }),
		flog.FieldHandler("method", func(ctx *fiber.Ctx) string { return ctx.Method() }),
		flog.FieldHandler("url", func(ctx *fiber.Ctx) string { return ctx.OriginalURL() }),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration) {
		flog.InfoFrom(ctx).
			Int("status", ctx.Response().StatusCode()).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("handled request")
	})
}

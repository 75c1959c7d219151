package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"exusiai.dev/roadmap-tracker/internal/pkg/apperr"
	"exusiai.dev/roadmap-tracker/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *apperr.AppError) error {
	flog.WarnFrom(ctx).
		Err(e).
		Str("code", e.ErrorCode).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var e *apperr.AppError
	if errors.As(err, &e) {
		return handleCustomError(ctx, e)
	}

	re := *apperr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
		if fe.Code == fiber.StatusNotFound {
			re.ErrorCode = apperr.CodeNotFound
		}
		// routing and method errors are client errors, not worth a stack or a sentry event
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, &re)
		}
	}

	flog.ErrorFrom(ctx).
		Stack().
		Err(err).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}

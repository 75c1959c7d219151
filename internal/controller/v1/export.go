package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/pkg/cachectrl"
	"exusiai.dev/roadmap-tracker/internal/server/svr"
	"exusiai.dev/roadmap-tracker/internal/service"
)

type Export struct {
	fx.In

	ExportService *service.Export
}

func RegisterExport(v1 *svr.V1, c Export) {
	v1.Get("/export", c.ExportJSON)
	v1.Get("/export/xlsx", c.ExportXLSX)
}

func (c Export) ExportJSON(ctx *fiber.Ctx) error {
	result, err := c.ExportService.JSON()
	if err != nil {
		return err
	}
	return sendAttachment(ctx, result, fiber.MIMEApplicationJSON)
}

func (c Export) ExportXLSX(ctx *fiber.Ctx) error {
	result, err := c.ExportService.XLSX()
	if err != nil {
		return err
	}
	return sendAttachment(ctx, result, service.MIMEXLSX)
}

func sendAttachment(ctx *fiber.Ctx, result *service.ExportResult, contentType string) error {
	cachectrl.OptOut(ctx)
	ctx.Attachment(result.Filename)
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderETag, `"`+result.Revision+`"`)
	return ctx.Send(result.Body)
}

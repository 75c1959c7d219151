package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/pkg/cachectrl"
	"exusiai.dev/roadmap-tracker/internal/server/svr"
	"exusiai.dev/roadmap-tracker/internal/service"
	"exusiai.dev/roadmap-tracker/internal/util/rekuest"
)

type Progress struct {
	fx.In

	ProgressService *service.Progress
}

func RegisterProgress(v1 *svr.V1, c Progress) {
	progress := v1.Group("/progress", func(ctx *fiber.Ctx) error {
		cachectrl.OptOut(ctx)
		return ctx.Next()
	})
	progress.Get("/", c.GetOverview)
	progress.Delete("/", c.Reset)
	progress.Get("/raw", c.GetRaw)

	phase := progress.Group("/phases/:phaseId")
	phase.Get("/", c.GetPhase)
	phase.Put("/weeks/:weekId", c.ToggleWeek)
	phase.Post("/weeks/:weekId/days/:day/toggle", c.ToggleDay)
}

type weekParams struct {
	PhaseID string `params:"phaseId" validate:"required"`
	WeekID  int    `params:"weekId" validate:"required,min=1"`
}

type dayParams struct {
	PhaseID string `params:"phaseId" validate:"required"`
	WeekID  int    `params:"weekId" validate:"required,min=1"`
	Day     int    `params:"day" validate:"min=0"`
}

type ToggleWeekRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

func (c Progress) GetOverview(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ProgressService.Overview(ctx.Query("q")))
}

func (c Progress) GetRaw(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ProgressService.GetProgress())
}

func (c Progress) GetPhase(ctx *fiber.Ctx) error {
	phase, err := c.ProgressService.PhaseOverview(ctx.Params("phaseId"), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(phase)
}

func (c Progress) ToggleDay(ctx *fiber.Ctx) error {
	var params dayParams
	if err := rekuest.ValidParams(ctx, &params); err != nil {
		return err
	}

	week, err := c.ProgressService.ToggleDay(ctx.UserContext(), params.PhaseID, params.WeekID, params.Day)
	if err != nil {
		return err
	}
	return ctx.JSON(week)
}

func (c Progress) ToggleWeek(ctx *fiber.Ctx) error {
	var params weekParams
	if err := rekuest.ValidParams(ctx, &params); err != nil {
		return err
	}
	var request ToggleWeekRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	week, err := c.ProgressService.ToggleWeek(ctx.UserContext(), params.PhaseID, params.WeekID, *request.Completed)
	if err != nil {
		return err
	}
	return ctx.JSON(week)
}

func (c Progress) Reset(ctx *fiber.Ctx) error {
	if err := c.ProgressService.Reset(ctx.UserContext(), ctx.QueryBool("confirm")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

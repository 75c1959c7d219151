package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/pkg/cachectrl"
	"exusiai.dev/roadmap-tracker/internal/server/svr"
	"exusiai.dev/roadmap-tracker/internal/service"
	"exusiai.dev/roadmap-tracker/internal/util/rekuest"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templatesFS, "templates/*.html"))

const noticeResetUnconfirmed = "reset-unconfirmed"

type Page struct {
	fx.In

	ProgressService *service.Progress
}

func RegisterPage(view *svr.View, c Page) {
	view.Get("/", c.Index)
	view.Get("/print", c.Print)
	view.Post("/toggle/day", c.ToggleDay)
	view.Post("/toggle/week", c.ToggleWeek)
	view.Post("/reset", c.Reset)
}

// pageState is the view state carried in the query string: the search query
// and the expanded phase.
type pageState struct {
	Query string `form:"q" query:"q"`
	Open  string `form:"open" query:"open"`
}

func (s pageState) location() string {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	v.Set("open", s.Open)
	return "/?" + v.Encode()
}

type pageData struct {
	Overview *model.Overview
	State    pageState
	Print    bool
	// ResetUnconfirmed is set after a reset form was submitted without confirmation.
	ResetUnconfirmed bool
}

// IsOpen reports whether the phase card is expanded. Print renders every phase
// expanded.
func (d pageData) IsOpen(phaseID string) bool {
	return d.Print || d.State.Open == phaseID
}

func (c Page) render(ctx *fiber.Ctx, name string, data pageData) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}

func (c Page) state(ctx *fiber.Ctx) pageState {
	state := pageState{
		Query: ctx.Query("q"),
		Open:  ctx.Query("open"),
	}
	// without an explicit choice the first phase starts expanded; open= collapses all
	if !ctx.Context().QueryArgs().Has("open") {
		if phases := c.ProgressService.CatalogRepo.GetCatalog().Phases; len(phases) > 0 {
			state.Open = phases[0].ID
		}
	}
	return state
}

func (c Page) Index(ctx *fiber.Ctx) error {
	state := c.state(ctx)
	return c.render(ctx, "index.html", pageData{
		Overview:         c.ProgressService.Overview(state.Query),
		State:            state,
		ResetUnconfirmed: ctx.Query("notice") == noticeResetUnconfirmed,
	})
}

func (c Page) Print(ctx *fiber.Ctx) error {
	state := c.state(ctx)
	return c.render(ctx, "index.html", pageData{
		Overview: c.ProgressService.Overview(state.Query),
		State:    state,
		Print:    true,
	})
}

type dayForm struct {
	pageState
	PhaseID string `form:"phase" validate:"required"`
	WeekID  int    `form:"week" validate:"required,min=1"`
	Day     int    `form:"day" validate:"min=0"`
}

func (c Page) ToggleDay(ctx *fiber.Ctx) error {
	var form dayForm
	if err := rekuest.ValidBody(ctx, &form); err != nil {
		return err
	}
	if _, err := c.ProgressService.ToggleDay(ctx.UserContext(), form.PhaseID, form.WeekID, form.Day); err != nil {
		return err
	}
	return ctx.Redirect(form.location(), fiber.StatusSeeOther)
}

type weekForm struct {
	pageState
	PhaseID   string `form:"phase" validate:"required"`
	WeekID    int    `form:"week" validate:"required,min=1"`
	Completed bool   `form:"completed"`
}

func (c Page) ToggleWeek(ctx *fiber.Ctx) error {
	var form weekForm
	if err := rekuest.ValidBody(ctx, &form); err != nil {
		return err
	}
	if _, err := c.ProgressService.ToggleWeek(ctx.UserContext(), form.PhaseID, form.WeekID, form.Completed); err != nil {
		return err
	}
	return ctx.Redirect(form.location(), fiber.StatusSeeOther)
}

type resetForm struct {
	pageState
	Confirm string `form:"confirm"`
}

func (c Page) Reset(ctx *fiber.Ctx) error {
	var form resetForm
	if err := ctx.BodyParser(&form); err != nil {
		return err
	}
	if form.Confirm != "yes" {
		return ctx.Redirect(form.location()+"&notice="+noticeResetUnconfirmed, fiber.StatusSeeOther)
	}
	if err := c.ProgressService.Reset(ctx.UserContext(), true); err != nil {
		return err
	}
	return ctx.Redirect(form.location(), fiber.StatusSeeOther)
}

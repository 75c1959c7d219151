package test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"exusiai.dev/roadmap-tracker/internal/pkg/testentry"
)

func startup(t *testing.T) *fiber.App {
	t.Helper()

	var fiberApp *fiber.App
	testentry.Populate(t, &fiberApp)
	return fiberApp
}

func request(t *testing.T, app *fiber.App, req *http.Request, msTimeout ...int) *http.Response {
	t.Helper()

	resp, err := app.Test(req, msTimeout...)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestAPIMeta(t *testing.T) {
	app := startup(t)

	t.Run("health", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("version", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Tracker-Request-ID"))
	})

	t.Run("unknown route", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", gjson.Get(bodyString(resp), "code").String())
	})
}

func TestAPICatalog(t *testing.T) {
	app := startup(t)

	t.Run("catalog", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(resp)
		assert.Equal(t, int64(6), gjson.Get(body, "phases.#").Int())
		assert.Equal(t, "HTML Basics", gjson.Get(body, "phases.0.weeks.0.title").String())
	})

	t.Run("search", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=html", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(resp)
		assert.Equal(t, "html", gjson.Get(body, "query").String())
		assert.Positive(t, gjson.Get(body, "results.#").Int())
		assert.Equal(t, "Phase 1", gjson.Get(body, "results.0.phaseId").String())
	})
}

func TestAPIProgress(t *testing.T) {
	app := startup(t)

	resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyString(resp)
	assert.Equal(t, int64(0), gjson.Get(body, "completed").Int())
	assert.Equal(t, int64(210), gjson.Get(body, "total").Int())

	t.Run("toggle day", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/progress/phases/Phase%201/weeks/1/days/0/toggle", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(resp)
		assert.Equal(t, int64(1), gjson.Get(body, "completed").Int())
		assert.True(t, gjson.Get(body, "days.0.completed").Bool())
		assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")
	})

	t.Run("toggle day out of range", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/progress/phases/Phase%201/weeks/1/days/7/toggle", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("toggle day in unknown week", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodPost, "/api/v1/progress/phases/Phase%201/weeks/30/days/0/toggle", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("toggle week", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPut, "/api/v1/progress/phases/Phase%201/weeks/2", `{"completed": true}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, gjson.Get(bodyString(resp), "fullyComplete").Bool())
	})

	t.Run("toggle week without target", func(t *testing.T) {
		resp := request(t, app, jsonRequest(http.MethodPut, "/api/v1/progress/phases/Phase%201/weeks/2", `{}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("phase", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress/phases/Phase%201", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := bodyString(resp)
		assert.Equal(t, int64(8), gjson.Get(body, "completed").Int())
		assert.Equal(t, int64(29), gjson.Get(body, "percent").Int())
	})

	t.Run("raw", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress/raw", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, gjson.Get(bodyString(resp), `Phase 1.1.days.0`).Bool())
	})

	t.Run("reset requires confirmation", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/progress", nil))
		assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
		assert.Equal(t, "CONFIRMATION_REQUIRED", gjson.Get(bodyString(resp), "code").String())
	})

	t.Run("reset", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodDelete, "/api/v1/progress?confirm=true", nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))
		assert.Equal(t, int64(0), gjson.Get(bodyString(resp), "completed").Int())
	})
}

func TestAPIExport(t *testing.T) {
	app := startup(t)

	resp := request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/export", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="fullstack-7mo-progress.json"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderETag))
	assert.Equal(t, "{}", bodyString(resp))

	resp = request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="fullstack-7mo-progress.xlsx"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(bodyString(resp), "PK"), "xlsx is a zip archive")
}

func TestViewPages(t *testing.T) {
	app := startup(t)

	t.Run("index", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

		body := bodyString(resp)
		assert.Contains(t, body, "HTML Basics")
		assert.NotContains(t, body, "window.print()")
	})

	t.Run("print", func(t *testing.T) {
		resp := request(t, app, httptest.NewRequest(http.MethodGet, "/print", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyString(resp), "window.print()")
	})

	t.Run("toggle day form", func(t *testing.T) {
		resp := request(t, app, formRequest("/toggle/day", url.Values{
			"phase": {"Phase 1"},
			"week":  {"1"},
			"day":   {"3"},
			"q":     {"html"},
			"open":  {"Phase 1"},
		}))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/?open=Phase+1&q=html", resp.Header.Get(fiber.HeaderLocation))

		resp = request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))
		assert.Equal(t, int64(1), gjson.Get(bodyString(resp), "completed").Int())
	})

	t.Run("unconfirmed reset form", func(t *testing.T) {
		resp := request(t, app, formRequest("/reset", url.Values{"open": {""}}))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderLocation), "notice=reset-unconfirmed")

		resp = request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))
		assert.Equal(t, int64(1), gjson.Get(bodyString(resp), "completed").Int())
	})

	t.Run("confirmed reset form", func(t *testing.T) {
		resp := request(t, app, formRequest("/reset", url.Values{"confirm": {"yes"}}))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		resp = request(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil))
		assert.Equal(t, int64(0), gjson.Get(bodyString(resp), "completed").Int())
	})
}

package skill

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kirorab/12306-skill/client"
	"github.com/kirorab/12306-skill/render"
	"github.com/kirorab/12306-skill/station"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StartServer exposes the query pipeline over HTTP. It blocks until the
// listener fails.
func (a *App) StartServer() error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.GET("/api/health", a.handleHealth)
	e.GET("/api/v1/tickets", a.handleTickets)

	addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
	a.log.Info().Str("addr", addr).Msg("server listening")
	return e.Start(addr)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleTickets serves one query. Parameters mirror the CLI flags: from,
// to, date, types, depart, arrive, maxDuration, seats, available, refresh,
// format (json|md|html).
func (a *App) handleTickets(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	date := c.QueryParam("date")
	if from == "" || to == "" || date == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "missing_parameter",
			Message: "from, to and date are required",
		})
	}

	criteria, err := ParseCriteria(
		c.QueryParam("types"),
		c.QueryParam("depart"),
		c.QueryParam("arrive"),
		c.QueryParam("maxDuration"),
		c.QueryParam("seats"),
		c.QueryParam("available") == "true",
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_filter", Message: err.Error()})
	}

	proj, err := a.Query(c.Request().Context(), QueryRequest{
		From:     from,
		To:       to,
		Date:     date,
		Criteria: criteria,
		Refresh:  c.QueryParam("refresh") == "true",
	})
	if err != nil {
		var notFound *station.NotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "station_not_found", Message: err.Error()})
		}
		var fetch *client.FetchError
		if errors.As(err, &fetch) {
			return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream_error", Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
	}

	switch c.QueryParam("format") {
	case "html":
		page, err := render.HTML(*proj)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "render_error", Message: err.Error()})
		}
		return c.HTMLBlob(http.StatusOK, page)
	case "md", "markdown":
		return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", render.Markdown(*proj))
	default:
		body, err := render.JSON(*proj)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "render_error", Message: err.Error()})
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}

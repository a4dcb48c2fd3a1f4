package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"backend/internal/engine"
	"backend/internal/export"
)

type Handler struct {
	store *engine.Store
}

func NewHandler(store *engine.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Healthz)

	api := e.Group("/api")
	api.GET("/options", h.GetOptions)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/export.xlsx", h.GetExport)
}

// parseSelection decodes the repeatable filter query parameters. Unknown or
// non-numeric year values are dropped rather than rejected.
func parseSelection(c echo.Context) engine.Selection {
	params := c.QueryParams()
	sel := engine.Selection{
		CountryRegion: params["country"],
		Aircraft:      params["aircraft"],
		Operator:      params["operator"],
	}
	for _, v := range params["year"] {
		if y, err := strconv.Atoi(v); err == nil {
			sel.Years = append(sel.Years, y)
		}
	}
	return sel
}

// notReady answers 503 with the load error detail while the dataset is
// still loading or failed to load.
func (h *Handler) notReady(c echo.Context) error {
	msg := "dataset is still loading"
	if err := h.store.LoadErr(); err != nil {
		msg = "dataset failed to load"
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":  msg,
			"detail": err.Error(),
		})
	}
	return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": msg})
}

func (h *Handler) Healthz(c echo.Context) error {
	records, ok := h.store.Dataset()
	if !ok {
		return h.notReady(c)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":     "ok",
		"rows":       len(records),
		"generation": h.store.Generation(),
	})
}

func (h *Handler) GetOptions(c echo.Context) error {
	records, ok := h.store.Dataset()
	if !ok {
		return h.notReady(c)
	}
	return c.JSON(http.StatusOK, engine.FilterOptions(records))
}

func (h *Handler) GetDashboard(c echo.Context) error {
	records, ok := h.store.Dataset()
	if !ok {
		return h.notReady(c)
	}

	view := engine.Apply(records, parseSelection(c))
	data := engine.Compute(view, records)

	return c.JSON(http.StatusOK, echo.Map{
		"data":       data,
		"charts":     engine.Charts(data),
		"generation": h.store.Generation(),
	})
}

func (h *Handler) GetExport(c echo.Context) error {
	records, ok := h.store.Dataset()
	if !ok {
		return h.notReady(c)
	}

	view := engine.Apply(records, parseSelection(c))
	data := engine.Compute(view, records)

	f, err := export.Workbook(data)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":  "export failed",
			"detail": err.Error(),
		})
	}
	defer f.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "aircrash-report.xlsx"))
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}

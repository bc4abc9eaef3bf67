package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/Rohitwap/product-browser/internal/catalog"
	"github.com/Rohitwap/product-browser/internal/web/views"
)

// Config carries the UI knobs the handlers need.
type Config struct {
	PageSize    int
	SearchLimit int
	Debounce    time.Duration
	ImageHosts  []string
}

// Handler serves the page shell and the htmx fragments.
type Handler struct {
	client catalog.Client
	log    *slog.Logger
	cfg    Config
}

// NewHandler creates a web handler backed by the given catalog client.
func NewHandler(client catalog.Client, log *slog.Logger, cfg Config) *Handler {
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	return &Handler{client: client, log: log, cfg: cfg}
}

// Register attaches the page and fragment routes to the server.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/products", h.Products)
	e.GET("/search", h.Search)
}

// Index serves the full page. The initial page number comes from the
// ?page query parameter so a shared or reloaded URL lands on the same
// grid page.
func (h *Handler) Index(c echo.Context) error {
	pager := NewPager(PageParam(c.QueryParam("page")), h.cfg.PageSize)

	grid, err := h.fetchGrid(c, pager)
	if err != nil {
		h.log.Error("initial product fetch failed", "page", pager.Page, "error", err)
	}

	return h.render(c, views.Page(views.PageData{
		Grid:       grid,
		DebounceMS: int(h.cfg.Debounce.Milliseconds()),
	}))
}

// Products serves the grid fragment for one page. On success the
// response carries an HX-Push-Url header so the browser's address bar
// tracks the page actually shown; a failed fetch renders the retry
// state and leaves the URL alone.
func (h *Handler) Products(c echo.Context) error {
	pager := NewPager(PageParam(c.QueryParam("page")), h.cfg.PageSize)

	grid, err := h.fetchGrid(c, pager)
	if err != nil {
		h.log.Error("product fetch failed", "page", pager.Page, "error", err)
		return h.render(c, views.Grid(grid))
	}

	c.Response().Header().Set("HX-Push-Url", fmt.Sprintf("/?page=%d", pager.Page))
	return h.render(c, views.Grid(grid))
}

// Search serves the autocomplete dropdown fragment. A blank query, after
// trimming, renders nothing and never reaches the catalog.
func (h *Handler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.HTML(http.StatusOK, "")
	}

	page, err := h.client.Search(c.Request().Context(), catalog.SearchRequest{
		Query: q,
		Limit: h.cfg.SearchLimit,
	})
	if err != nil {
		h.log.Error("search failed", "query", q, "error", err)
		return h.render(c, views.SearchError())
	}

	products := page.Products
	if len(products) > h.cfg.SearchLimit {
		products = products[:h.cfg.SearchLimit]
	}
	return h.render(c, views.SearchResults(products))
}

// fetchGrid loads one catalog page and shapes it for the grid view. On
// error the returned GridData is the retry state for the same page.
func (h *Handler) fetchGrid(c echo.Context, pager Pager) (views.GridData, error) {
	page, err := h.client.List(c.Request().Context(), catalog.ListRequest{
		Limit: pager.PageSize,
		Skip:  pager.Offset(),
	})
	if err != nil {
		return views.GridData{Page: pager.Page, Failed: true}, err
	}

	pager.Total = page.Total
	return views.GridData{
		Products:   page.Products,
		Page:       pager.Page,
		TotalPages: pager.TotalPages(),
		ImageHosts: h.cfg.ImageHosts,
	}, nil
}

func (h *Handler) render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return component.Render(c.Request().Context(), c.Response())
}

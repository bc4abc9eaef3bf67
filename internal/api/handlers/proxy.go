package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

const (
	defaultProxyPage  = 1
	defaultProxyLimit = 10
)

// ProxyHandler forwards paginated listing requests to the upstream catalog
// and serves its JSON response verbatim. No record transformation happens
// here; the only logic is translating page/limit into an offset.
type ProxyHandler struct {
	client catalog.Client
	log    *slog.Logger
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(client catalog.Client, log *slog.Logger) *ProxyHandler {
	return &ProxyHandler{client: client, log: log}
}

// Products handles GET /api/product?page=<p>&limit=<n>. Missing or
// malformed parameters fall back to page 1 and limit 10. Any upstream
// failure collapses into a generic 500 payload.
func (h *ProxyHandler) Products(c echo.Context) error {
	page := queryInt(c, "page", defaultProxyPage)
	limit := queryInt(c, "limit", defaultProxyLimit)

	skip := (page - 1) * limit

	body, err := h.client.ListRaw(c.Request().Context(), limit, skip)
	if err != nil {
		h.log.Error("proxy fetch failed",
			"page", page,
			"limit", limit,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to fetch products",
		})
	}

	return c.JSONBlob(http.StatusOK, body)
}

// queryInt reads an integer query parameter, falling back to def for
// missing, malformed, or sub-1 values.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// RegisterProxyRoutes attaches the passthrough endpoint to an Echo group.
// The group is expected to carry permissive CORS so browser clients on
// other origins can consume it.
func RegisterProxyRoutes(g *echo.Group, h *ProxyHandler) {
	g.GET("/product", h.Products)
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Rohitwap/product-browser/internal/api/handlers"
	"github.com/Rohitwap/product-browser/internal/api/middleware"
	"github.com/Rohitwap/product-browser/internal/catalog"
	"github.com/Rohitwap/product-browser/internal/config"
	"github.com/Rohitwap/product-browser/internal/web"
	"github.com/Rohitwap/product-browser/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the product browsing server",
		Long: "Starts the web front end, the catalog proxy API, and the\n" +
			"upstream availability monitor.",
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	catalogClient := catalog.NewRESTClient(
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithHTTPClient(&http.Client{Timeout: cfg.Catalog.Timeout}),
		catalog.WithRateLimit(cfg.Catalog.RateLimit.PerSecond, cfg.Catalog.RateLimit.Burst),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	// Health endpoints. Readiness probes the upstream catalog.
	hh := handlers.NewHealthHandler(catalogClient)
	e.GET("/healthz", hh.Healthz)
	e.GET("/readyz", hh.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Browsing front end.
	webHandler := web.NewHandler(catalogClient, log, web.Config{
		PageSize:    cfg.UI.PageSize,
		SearchLimit: cfg.UI.SearchLimit,
		Debounce:    cfg.UI.SearchDebounce,
		ImageHosts:  cfg.UI.ImageHosts,
	})
	webHandler.Register(e)

	// Raw catalog proxy, open to any origin so other front ends can
	// consume it directly.
	proxy := e.Group("/api", echomw.CORS())
	handlers.RegisterProxyRoutes(proxy, handlers.NewProxyHandler(catalogClient, log))

	// Typed v1 API with generated OpenAPI docs.
	api := humaecho.New(e, huma.DefaultConfig("Product Browser API", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(catalogClient, cfg.UI.PageSize))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(catalogClient, cfg.UI.SearchLimit))

	monitor, err := catalog.NewMonitor(catalogClient, cfg.Catalog.ProbeInterval, log)
	if err != nil {
		return fmt.Errorf("creating catalog monitor: %w", err)
	}
	monitor.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "catalog", cfg.Catalog.BaseURL)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	<-monitor.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

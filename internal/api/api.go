// Package api assembles the Echo server, its middleware stack, and the huma
// operations for the price trigger monitor.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/price-trigger-monitor/api/openapi"
	"github.com/donaldgifford/price-trigger-monitor/internal/api/handlers"
	mw "github.com/donaldgifford/price-trigger-monitor/internal/api/middleware"
	"github.com/donaldgifford/price-trigger-monitor/internal/errreport"
	"github.com/donaldgifford/price-trigger-monitor/internal/queue"
	"github.com/donaldgifford/price-trigger-monitor/internal/store"
)

// Title is the OpenAPI document title.
const Title = "Price Trigger Monitor API"

// Deps are the services the HTTP API is built on.
type Deps struct {
	Store    store.Store
	Queue    queue.Queue
	Reporter errreport.Reporter
	Logger   *slog.Logger
	Version  string
}

// NewServer returns an Echo instance with probes, metrics, Swagger UI, and
// every /api/v1 operation registered, plus the huma API describing them.
func NewServer(d Deps) (*echo.Echo, huma.API) {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		mw.Recovery(d.Logger, d.Reporter),
		mw.Tracing(),
		mw.RequestLog(d.Logger),
		mw.Metrics(),
	)

	health := handlers.NewHealthHandler(d.Store, d.Queue)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig(Title, d.Version))
	Register(api, d.Store, d.Queue)
	return e, api
}

// Register adds every /api/v1 operation to api.
func Register(api huma.API, s store.Store, q queue.Queue) {
	handlers.RegisterTriggerRoutes(api, handlers.NewTriggerHandler(s, q))
	handlers.RegisterNotificationRoutes(api, handlers.NewNotificationHandler(s))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(s))
	handlers.RegisterQueueRoutes(api, handlers.NewQueueHandler(q))
}

// Package middleware provides Echo middleware for the price trigger monitor API.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/price-trigger-monitor/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, keeping raw
// URLs out of metric labels.
const unmatchedRoute = "unmatched"

// metricsSkipPaths are excluded from request metrics and traces.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// healthGauges maps probe paths to their up/down gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and count by
// method, route template, and status. Probe paths only update their gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, skip := metricsSkipPaths[path]; skip {
				err := next(c)
				if gauge, ok := healthGauges[path]; ok {
					gauge.Set(boolGauge(c.Response().Status < http.StatusBadRequest && err == nil))
				}
				return err
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			labels := []string{
				c.Request().Method,
				routeOf(c),
				strconv.Itoa(c.Response().Status),
			}
			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			return nil
		}
	}
}

func routeOf(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return unmatchedRoute
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}

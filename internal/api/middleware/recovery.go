package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/price-trigger-monitor/internal/errreport"
)

// Recovery returns Echo middleware that turns a handler panic into a 500,
// logs the stack, and forwards the panic to the error reporter.
func Recovery(log *slog.Logger, reporter errreport.Reporter) echo.MiddlewareFunc {
	if reporter == nil {
		reporter = errreport.Nop{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				req := c.Request()

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", req.Method,
					"path", req.URL.Path,
					"stack", string(buf[:n]),
				)
				reporter.Capture(req.Context(), fmt.Errorf("panic: %v", r), map[string]string{
					"component": "api",
					"route":     c.Path(),
				})

				err = c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}

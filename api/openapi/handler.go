// Package openapi serves Swagger UI for the huma-generated OpenAPI 3.1
// document and writes that document to files for client generation.
package openapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// SpecPath is where huma serves the JSON document.
const SpecPath = "/openapi.json"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Price Trigger Monitor API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "` + SpecPath + `",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds the Swagger UI endpoints to the Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}

// Write encodes the API's OpenAPI document as "json" or "yaml".
func Write(w io.Writer, api huma.API, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	case "yaml":
		data, err = api.OpenAPI().YAML()
	default:
		return fmt.Errorf("unknown openapi format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding openapi %s: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing openapi %s: %w", format, err)
	}
	return nil
}

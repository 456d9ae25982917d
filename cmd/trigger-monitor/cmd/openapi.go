package cmd

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/price-trigger-monitor/api/openapi"
	"github.com/donaldgifford/price-trigger-monitor/internal/api"
)

var openapiFormat string

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Print the OpenAPI document",
	Long:  "Builds the API routes without connecting to any backend and prints the generated OpenAPI document.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h := humaecho.New(echo.New(), huma.DefaultConfig(api.Title, Version))
		api.Register(h, nil, nil)
		return openapi.Write(cmd.OutOrStdout(), h, openapiFormat)
	},
}

func init() {
	openapiCmd.Flags().StringVar(&openapiFormat, "format", "json", "output format (json or yaml)")
	rootCmd.AddCommand(openapiCmd)
}

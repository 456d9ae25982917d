// Package main is the entry point for the trigger-monitor service.
package main

import (
	"os"

	"github.com/donaldgifford/price-trigger-monitor/cmd/trigger-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

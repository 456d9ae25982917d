// Package main is the entry point for the tmctl CLI client.
package main

import (
	"github.com/donaldgifford/price-trigger-monitor/cmd/tmctl/cmd"
)

func main() {
	cmd.Execute()
}

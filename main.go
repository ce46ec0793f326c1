// Package main is the entry point for the zaisan application.
package main

import (
	"github.com/samber/lo"
	"github.com/zaisan-cli/zaisan/cmd"
	"github.com/zaisan-cli/zaisan/config"
	"github.com/zaisan-cli/zaisan/internal/cache"
	"github.com/zaisan-cli/zaisan/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background maintenance of the detail cache.
	go cache.CollectGarbage()

	cmd.Execute()
}

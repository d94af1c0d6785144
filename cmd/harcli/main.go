package main

import (
	"os"

	"har-media-exporter/internal/cli"
	"har-media-exporter/pkg/metrics"
)

func main() {
	metrics.Init()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

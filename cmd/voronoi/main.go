// Voronoi - a random Voronoi diagram generator
//
// Voronoi scatters seed points over an image and paints each pixel with the
// theme colour of its nearest seed.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/voronoi/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Command geoart runs the interactive geometric drawing surface.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/geoart/geoart"
	"github.com/geoart/geoart/internal/ui"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if *verbose {
		geoart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ui.RunApp()
}

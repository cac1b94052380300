package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/marquee/config.toml)")
	catalogLoc := flag.String("catalog", "", "catalog file or http(s) URL (optional)")
	dataDir := flag.String("data", "", "directory for marquee.db and the log file (optional)")
	ephemeral := flag.Bool("ephemeral", false, "keep preferences and favorites in memory only")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Catalog:    *catalogLoc,
		DataDir:    *dataDir,
		Ephemeral:  *ephemeral,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}

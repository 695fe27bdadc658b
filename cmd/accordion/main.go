package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/five82/accordion/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dataPath := flag.String("data", "", "catalog file (.toml or .yaml); defaults to the builtin catalog")
	reloadSeconds := flag.Int("reload", 0, "reload the catalog file every N seconds (optional)")
	filter := flag.String("filter", "", "expression selecting items, e.g. department != \"Meats\"")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "accordion: stdout is not a terminal")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		DataPath:   *dataPath,
		Filter:     *filter,
	}
	if reload := *reloadSeconds; reload > 0 {
		opts.ReloadEvery = time.Duration(reload) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "accordion: %v\n", err)
		return 1
	}
	return 0
}

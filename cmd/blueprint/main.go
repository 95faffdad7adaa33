// Command blueprint resolves project descriptions into components and a
// Mermaid diagram from the terminal.
//
// Usage:
//
//	blueprint -text "A real-time chat application with user authentication"
//	blueprint -file descriptions.txt -json -concurrency 8
//	cat descriptions.txt | blueprint -file -
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/infrastructure"
)

func main() {
	var opts options
	flag.StringVar(&opts.text, "text", "", "Description to resolve")
	flag.StringVar(&opts.file, "file", "", "File with one description per line (- for stdin)")
	flag.BoolVar(&opts.offline, "offline", false, "Skip remote inference and use keyword extraction only")
	flag.BoolVar(&opts.json, "json", false, "Write results as JSON")
	flag.IntVar(&opts.concurrency, "concurrency", 4, "Maximum concurrent resolutions in batch mode")
	verbose := flag.Bool("v", false, "Log resolution diagnostics to stderr")
	flag.Parse()

	if opts.text == "" && opts.file == "" && flag.NArg() > 0 {
		opts.text = flag.Arg(0)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(fmt.Errorf("config load failed: %w", err))
	}
	if !*verbose {
		cfg.Logging.Level = "warn"
	}
	logger := infrastructure.NewLogger(&cfg.Logging, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := infrastructure.NewResolver(ctx, &cfg.Inference, catalog.Default(), opts.offline, logger)
	if err != nil {
		fatal(err)
	}

	if err := run(ctx, res, opts, os.Stdin, os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "blueprint:", err)
	os.Exit(1)
}

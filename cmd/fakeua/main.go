// Command fakeua prints one randomized browser user-agent string.
//
// Usage:
//
//	fakeua [flags] [browser]
//
// The optional browser argument restricts the pick (chrome, edge, firefox,
// safari, opera; aliases like "ie" or "ff" are accepted). Without it the
// browser is chosen at random, weighted by usage share.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/fakeua"
	"github.com/dmitrymomot/fakeua/pkg/logger"
)

func main() {
	var (
		noCache     = flag.Bool("no-cache", false, "fetch fresh records, skipping cache read and write")
		refresh     = flag.Bool("refresh", false, "re-fetch and rewrite the cache before picking")
		removeCache = flag.Bool("remove-cache", false, "delete the cache file and exit")
		timeout     = flag.Duration("timeout", 0, "override the HTTP timeout (e.g. 5s)")
		debug       = flag.Bool("debug", false, "enable debug logging")
		version     = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("fakeua " + fakeua.Version)
		return
	}

	cfg, err := fakeua.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *timeout > 0 {
		cfg.HTTPTimeout = *timeout
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if *debug {
		level = slog.LevelDebug
	}
	log := logger.New(logger.WithLevel(level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg, options{
		browser:     flag.Arg(0),
		noCache:     *noCache,
		refresh:     *refresh,
		removeCache: *removeCache,
	}); err != nil {
		log.Error("fakeua failed", logger.Error(err))
		os.Exit(1)
	}
}

type options struct {
	browser     string
	noCache     bool
	refresh     bool
	removeCache bool
}

func run(ctx context.Context, log *slog.Logger, cfg fakeua.Config, opts options) error {
	genOpts := []fakeua.Option{
		fakeua.WithLogger(log),
		fakeua.WithConfig(cfg),
	}
	if opts.noCache {
		genOpts = append(genOpts, fakeua.WithoutCache())
	}
	gen := fakeua.New(genOpts...)

	if opts.removeCache {
		if err := gen.RemoveCache(); err != nil {
			return err
		}
		log.Info("cache removed", logger.CachePath(cfg.CachePath))
		return nil
	}

	if opts.refresh {
		start := time.Now()
		if err := gen.Refresh(ctx); err != nil {
			return err
		}
		log.Debug("cache refreshed", slog.Duration("took", time.Since(start)))
	}

	ua, err := gen.UserAgent(ctx, opts.browser)
	if err != nil {
		return err
	}

	fmt.Println(ua)
	return nil
}

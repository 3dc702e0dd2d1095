package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/nagy135/convex-game-of-life/internal/app"
	"github.com/nagy135/convex-game-of-life/internal/transport"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "lifed: ", log.LstdFlags)

	e, err := app.OpenEngine(cfg)
	if err != nil {
		logger.Fatalf("open engine: %v", err)
	}
	app.CheckIntervals(logger, cfg.Poll, e.Config().ThrottleWindow)

	srv, err := transport.NewServer(e, logger)
	if err != nil {
		logger.Fatalf("rpc: %v", err)
	}
	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatalf("listen %s: %v", cfg.Addr, err)
	}
	logger.Printf("serving boards on %s (store=%s poll=%v throttle=%v)", l.Addr(), cfg.Store, cfg.Poll, e.Config().ThrottleWindow)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return transport.Serve(ctx, l, srv) })
	g.Go(func() error { return app.NewRunner(e, cfg.Poll, logger).Run(ctx) })
	if err := g.Wait(); err != nil {
		logger.Fatal(err)
	}
	logger.Print("stopped")
}

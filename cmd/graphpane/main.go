// Command graphpane runs the graph visualization backend: an in-memory
// key-value-backed graph store behind a REST and WebSocket API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/graphpane/graphpane/internal/api"
	"github.com/graphpane/graphpane/internal/config"
	"github.com/graphpane/graphpane/internal/kvindex"
	"github.com/graphpane/graphpane/internal/service"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("parsing log level")
	}
	log.SetLevel(level)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	graphStore := store.New(kvindex.New(cfg.KVBuckets), cfg.GraphDirected, cfg.GraphWeighted, log)

	hub := ws.NewHub(log)

	deps := &api.RouterDeps{
		Log:         log,
		Hub:         hub,
		Nodes:       service.NewNodeService(graphStore, hub, log),
		Edges:       service.NewEdgeService(graphStore, hub, log),
		Graph:       service.NewGraphService(graphStore, cfg.PathsSafetyThreshold, log),
		Viewport:    service.NewViewportService(graphStore, log),
		Snapshot:    service.NewExportImportService(graphStore, hub, log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":     cfg.Addr(),
		"version":  config.Version,
		"directed": cfg.GraphDirected,
		"weighted": cfg.GraphWeighted,
	}).Info("starting graphpane")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/price-trigger-monitor/internal/api"
	"github.com/donaldgifford/price-trigger-monitor/internal/engine"
)

const shutdownTimeout = 10 * time.Second

var (
	serveNoAPI       bool
	serveNoScheduler bool
	serveNoWorker    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, scheduler, and worker",
	Long: "Runs the HTTP API, the cron scheduler (scan, reap, purge), and a queue worker " +
		"in one process. Each part can be disabled to split them across deployments.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveNoAPI, "no-api", false, "do not start the HTTP API")
	serveCmd.Flags().BoolVar(&serveNoScheduler, "no-scheduler", false, "do not run scheduled scans")
	serveCmd.Flags().BoolVar(&serveNoWorker, "no-worker", false, "do not process queued jobs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() { runErr = err })
		stop()
	}

	var (
		sched *engine.Scheduler
		srv   *echo.Echo
	)

	if !serveNoScheduler {
		sched, err = engine.NewScheduler(
			a.newScanner(), a.queue, a.store,
			a.cfg.Scanner.Interval, a.cfg.Queue.ReapInterval, a.cfg.Queue.Retention,
			a.log,
		)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.RecoverStaleJobRuns(ctx)
		sched.Start()
	}

	if !serveNoWorker {
		w, err := a.newWorker()
		if err != nil {
			return fmt.Errorf("creating worker: %w", err)
		}
		wg.Go(func() {
			err := w.Run(ctx)
			switch {
			case errors.Is(err, engine.ErrWorkerLockHeld):
				a.log.Warn("another worker holds the lock; this process will not process jobs")
			case err != nil:
				fail(fmt.Errorf("worker: %w", err))
			}
		})
	}

	if !serveNoAPI {
		srv, _ = api.NewServer(api.Deps{
			Store:    a.store,
			Queue:    a.queue,
			Reporter: a.reporter,
			Logger:   a.log,
			Version:  Version,
		})
		srv.Server.ReadTimeout = a.cfg.Server.ReadTimeout
		srv.Server.WriteTimeout = a.cfg.Server.WriteTimeout

		addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
		a.log.Info("starting server", "addr", addr)

		wg.Go(func() {
			if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fail(fmt.Errorf("http server: %w", err))
			}
		})
	}

	<-ctx.Done()
	a.log.Info("shutting down")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error("shutting down server", "error", err)
		}
		cancel()
	}
	wg.Wait()
	if sched != nil {
		<-sched.Stop().Done()
	}

	a.log.Info("stopped")
	return runErr
}

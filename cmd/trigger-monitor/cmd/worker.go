package cmd

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/price-trigger-monitor/internal/engine"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process queued price checks until interrupted",
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	w, err := a.newWorker()
	if err != nil {
		return fmt.Errorf("creating worker: %w", err)
	}

	err = w.Run(ctx)
	if errors.Is(err, engine.ErrWorkerLockHeld) {
		return fmt.Errorf("another worker is running: %w", err)
	}
	return err
}

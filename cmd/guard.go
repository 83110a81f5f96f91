package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// guardCmd runs the session guard without the HTTP server, for deployments
// that scale the API and the sweeper separately.
var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Start the session guard",
	Long:  `Run only the background sweeper that force-closes forgotten sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		startGuard()
	},
}

func startGuard() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		deps.Guard.Run(ctx)
		close(done)
	}()

	deps.Logger.Info("session guard is running. Press Ctrl+C to stop.")

	sig := <-sigChan
	deps.Logger.Info("received signal, shutting down guard", "signal", sig)
	cancel()
	<-done

	if err := deps.DB.Close(); err != nil {
		deps.Logger.Error("database close error", "error", err)
	}
	deps.Logger.Info("guard shutdown complete")
}

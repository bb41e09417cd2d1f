// FILE: ecosnap/src/cmd/ecosnap/commands/serve.go
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecosnap/src/internal/server"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// ServeCommand runs the HTTP API until interrupted
type ServeCommand struct {
	load EnvLoader
	term Terminal
}

// NewServeCommand creates a new serve command
func NewServeCommand(load EnvLoader, term Terminal) *ServeCommand {
	return &ServeCommand{load: load, term: term}
}

func (c *ServeCommand) Execute(args []string) error {
	fs := newFlagSet("serve", c.term)
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, err := c.load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	srv, err := server.New(ctx, env.Config.Server, env.Service, env.Logger)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}
	if err := srv.Start(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if statusReporterEnabled() {
		g.Go(func() error {
			statusReporter(gctx, srv, env, statusInterval)
			return nil
		})
	}

	base := "http://" + srv.Addr()
	fmt.Fprintf(c.term.Info, "EcoSnap listening on %s\n", base)
	fmt.Fprintf(c.term.Info, "  POST %s%s  (multipart field 'image')\n", base, server.ScanPath)
	fmt.Fprintf(c.term.Info, "  GET  %s%s\n", base, server.DashboardPath)
	fmt.Fprintf(c.term.Info, "  GET  %s%s\n", base, server.TipsPath)
	fmt.Fprintf(c.term.Info, "  GET  %s%s\n", base, server.StatusPath)

	<-sigChan
	cancel()
	env.Logger.Info("msg", "Shutdown signal received, starting graceful shutdown...")

	done := make(chan struct{})
	go func() {
		srv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		env.Logger.Info("msg", "Shutdown complete")
		return g.Wait()
	case <-time.After(shutdownTimeout):
		return fmt.Errorf("shutdown timeout exceeded after %s", shutdownTimeout)
	}
}

func (c *ServeCommand) Description() string {
	return "Run the HTTP API (default)"
}

func (c *ServeCommand) Help() string {
	return `Serve Command - Run the EcoSnap HTTP API

Usage:
  ecosnap [options] serve

Endpoints:
  POST /scan        Upload an image (multipart field 'image', .jpg/.jpeg/.png)
  GET  /dashboard   Category counts and EcoScore
  GET  /tips        Tip table
  GET  /status      Service statistics

The listen address comes from server.host and server.port, or -host and -port.
Stops gracefully on SIGINT or SIGTERM.
Statistics are logged at debug level every 30s unless ECOSNAP_DISABLE_STATUS_REPORTER=1.
`
}

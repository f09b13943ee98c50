package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP in the background. The returned channel is closed on
// SIGINT, SIGTERM or SIGHUP, or when the listener fails; Err reports the
// latter.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})
	sigCtx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			a.serveErr = err
			stop()
		}
	}()

	go func() {
		<-sigCtx.Done()
		stop()
		close(done)
	}()

	return done
}

// Err is the listener failure that ended Start, if any. It is only
// meaningful once the channel from Start is closed.
func (a *App) Err() error {
	return a.serveErr
}

// Stop runs the closers in registration order, HTTP server first.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	for _, c := range a.closers {
		if err := c.close(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", c.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application stopped")
}

type closer struct {
	name  string
	close func(context.Context) error
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, closer{name: name, close: fn})
}

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkglog"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkguid"
)

// Options controls how the application is built.
type Options struct {
	// ConfigPath overrides the config file location. When empty the path is
	// /config/config.yaml, or ./config/config.yaml with LOCAL=true.
	ConfigPath string
}

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid pkguid.StringID

	// server
	router     *pkgrouter.Router
	httpServer *http.Server
	serveErr   error

	closers []closer
}

func New(opts Options) *App {
	pkglog.InitLogging("info")

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig(opts.ConfigPath)
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.addCloser("Config", func(context.Context) error {
		return app.config.Close()
	})

	return app
}

// ShutdownTimeout is the budget for Stop.
func (a *App) ShutdownTimeout() time.Duration {
	return a.config.GetDuration("server.shutdown_timeout")
}

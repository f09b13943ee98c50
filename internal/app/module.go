package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/xlplot/internal/plot"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.plot.enabled") {
		closer, err := plot.New(plot.Dependency{
			Config: a.config,
			Router: a.router,
		})
		if err != nil {
			slog.Error("failed to init module plot", "error", err)
			os.Exit(1)
		}
		a.addCloser("Plot", closer)
	}
}

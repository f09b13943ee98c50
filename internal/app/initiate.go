package app

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkglog"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/xlplot/internal/pkg/pkguid"
)

// EnvPrefix prefixes environment overrides, e.g. XLPLOT_SERVER_ADDRESS_HTTP.
const EnvPrefix = "XLPLOT"

// Defaults returns the value of every config key the application reads.
func Defaults() map[string]any {
	return map[string]any{
		"tz":                            "UTC",
		"log.level":                     "info",
		"server.address.http":           ":8080",
		"server.correlation_id":         string(pkguid.KindUUID),
		"server.shutdown_timeout":       "10s",
		"modules.plot.enabled":          true,
		"modules.plot.max_upload_bytes": 32 << 20,
	}
}

// ConfigPath resolves the config file location when none is given.
func ConfigPath(override string) string {
	if override != "" {
		return override
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig(override string) {
	cfg, err := pkgconfig.NewViper(ConfigPath(override),
		pkgconfig.WithDefaults(Defaults()),
		pkgconfig.WithEnvPrefix(EnvPrefix),
	)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.InitLogging(cfg.GetString("log.level"))

	a.config = cfg
}

func (a *App) initLibraries() {
	uid, err := pkguid.NewStringID(pkguid.Kind(a.config.GetString("server.correlation_id")))
	if err != nil {
		slog.Error("failed to init correlation id generator", "error", err)
		os.Exit(1)
	}

	a.uuid = uid
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.addCloser("HTTP Server", a.httpServer.Shutdown)
}

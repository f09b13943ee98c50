package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("LOCAL", "")
	if got := ConfigPath(""); got != "/config/config.yaml" {
		t.Fatalf("unexpected default path %q", got)
	}

	t.Setenv("LOCAL", "true")
	if got := ConfigPath(""); got != "./config/config.yaml" {
		t.Fatalf("unexpected local path %q", got)
	}

	if got := ConfigPath("/tmp/x.yaml"); got != "/tmp/x.yaml" {
		t.Fatalf("expected override to win, got %q", got)
	}
}

func newTestApp(t *testing.T, content string) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a := New(Options{ConfigPath: path})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		a.Stop(ctx)
	})
	return a
}

func TestNewMountsPlotModule(t *testing.T) {
	a := newTestApp(t, "server:\n  correlation_id: snowflake\n")

	if got := a.ShutdownTimeout(); got != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %v", got)
	}

	for _, path := range []string{"/health", "/"} {
		rec := httptest.NewRecorder()
		a.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: unexpected status %d", path, rec.Code)
		}
		if rec.Header().Get("X-Correlation-ID") == "" {
			t.Fatalf("GET %s: expected correlation id", path)
		}
	}
}

func TestNewWithPlotDisabled(t *testing.T) {
	a := newTestApp(t, "modules:\n  plot:\n    enabled: false\n")

	rec := httptest.NewRecorder()
	a.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with the module disabled, got %d", rec.Code)
	}
}

func TestStopRunsClosersInRegistrationOrder(t *testing.T) {
	a := newTestApp(t, "")

	var got []string
	a.closers = nil
	for _, name := range []string{"HTTP Server", "Plot", "Config"} {
		a.addCloser(name, func(context.Context) error {
			got = append(got, name)
			return nil
		})
	}

	a.Stop(context.Background())

	if strings.Join(got, ",") != "HTTP Server,Plot,Config" {
		t.Fatalf("unexpected close order: %v", got)
	}
}

func TestStartReportsListenFailure(t *testing.T) {
	a := newTestApp(t, "server:\n  address:\n    http: \"not-an-address\"\n")

	select {
	case <-a.Start():
	case <-time.After(5 * time.Second):
		t.Fatalf("expected Start to finish after the listener failed")
	}
	if a.Err() == nil {
		t.Fatalf("expected listen error")
	}
}

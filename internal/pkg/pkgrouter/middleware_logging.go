package pkgrouter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
)

// maxLoggedErrorBytes bounds how much of an error response is kept for the log.
const maxLoggedErrorBytes = 4 * 1024

//nolint:gochecknoglobals // read-only lookup
var maskedHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := maskedHeaders[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

// responseRecorder remembers the status and size of a response and keeps the
// head of error bodies.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	written int
	errBody []byte
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.status >= http.StatusBadRequest {
		if room := maxLoggedErrorBytes - len(w.errBody); room > 0 {
			w.errBody = append(w.errBody, p[:min(room, len(p))]...)
		}
	}

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

func (w *responseRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// errorMessage pulls the "error" field out of a JSON error body, falling
// back to the raw text.
func errorMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(body))
}

func routeOf(r *http.Request) string {
	if pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// middlewareLogging writes one record when a request arrives and one when it
// completes. Bodies are never read here: uploads stream untouched to the
// handler and only the message of an error response is logged.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeOf(r)

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"route", route,
			"content_type", r.Header.Get("Content-Type"),
			"content_length", r.ContentLength,
			"headers", maskHeaders(r.Header),
		)

		rec := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		attrs := []any{
			"method", r.Method,
			"route", route,
			"status", rec.status,
			"bytes", rec.written,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(rec.errBody) > 0 {
			attrs = append(attrs, "error", errorMessage(rec.errBody))
		}

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if rec.status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "response sent", attrs...)
	})
}

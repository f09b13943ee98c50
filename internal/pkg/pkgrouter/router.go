package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgerror"
)

// Handler returns a payload to encode as JSON, or an error to map through
// pkgerror.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router serves httprouter routes behind a shared middleware stack.
type Router struct {
	hr  *httprouter.Router
	mws []Middleware
}

// NewRouter builds the router and mounts GET /health.
func NewRouter(uid Generator) *Router {
	ro := &Router{
		hr: &httprouter.Router{
			RedirectTrailingSlash:  true,
			RedirectFixedPath:      true,
			HandleMethodNotAllowed: true,
			HandleOPTIONS:          true,
			SaveMatchedRoutePath:   true,
			NotFound:               statusHandler(http.StatusNotFound, "endpoint not found"),
			MethodNotAllowed:       statusHandler(http.StatusMethodNotAllowed, "method not allowed"),
		},
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uid),
			middlewareLogging,
		},
	}

	ro.Handle(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "server is running well"}, http.StatusOK)
	}))

	return ro
}

// POST registers h for POST requests on path. mws run after the shared stack.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.Handle(http.MethodPost, path, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		resp, err := h(req.Context(), req)
		if err != nil {
			encodeError(req.Context(), w, err)
			return
		}
		encodeOK(w, resp)
	}), mws...)
}

// Handle registers a plain http.Handler, for responses that are not JSON.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	stack := make([]Middleware, 0, len(r.mws)+len(mws))
	stack = append(stack, r.mws...)
	stack = append(stack, mws...)

	r.hr.Handler(method, path, Chain(h, stack...))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusHandler(code int, msg string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, errorResponse{Error: msg}, code)
	})
}

// encodeError writes {"error": msg}. Anything that is not a *pkgerror.Error is
// logged and reported as a generic 500.
func encodeError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "unhandled error", "error", err)
		writeJSON(w, errorResponse{Error: "Internal server error"}, http.StatusInternalServerError)
		return
	}

	if gerr.Type() == pkgerror.TypeServer {
		slog.ErrorContext(ctx, "server error", "error", gerr.String())
	} else {
		slog.DebugContext(ctx, "request rejected", "error", gerr.String())
	}

	writeJSON(w, errorResponse{Error: gerr.Msg()}, gerr.StatusCode())
}

func encodeOK(w http.ResponseWriter, resp any) {
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}

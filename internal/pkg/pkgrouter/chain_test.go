package pkgrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func tag(name string, trail *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChainRunsOuterFirst(t *testing.T) {
	var trail []string
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		trail = append(trail, "handler")
	}), tag("a", &trail), tag("b", &trail), tag("c", &trail))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(trail, ">"); got != "a>b>c>handler" {
		t.Fatalf("unexpected order %s", got)
	}
}

func TestChainWithoutMiddleware(t *testing.T) {
	called := false
	Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatalf("expected handler to run")
	}
}

func TestRouteMiddlewareRunsAfterSharedStack(t *testing.T) {
	var trail []string
	router := NewRouter(&staticGenerator{value: "cid"})
	router.POST("/x", func(ctx context.Context, r *http.Request) (any, error) {
		trail = append(trail, "handler:"+r.Header.Get("X-Seen-CID"))
		return nil, nil
	}, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Set("X-Seen-CID", w.Header().Get(HeaderCorrelationID))
			next.ServeHTTP(w, r)
		})
	}, tag("route", &trail))

	serve(router, http.MethodPost, "/x", nil)

	if got := strings.Join(trail, ">"); got != "route>handler:cid" {
		t.Fatalf("unexpected order %s", got)
	}
}

package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

type uc interface {
	Plot(ctx context.Context, in usecase.PlotInput) (usecase.PlotResult, error)
}

// RegisterHTTPEndpoint mounts the upload page and the upload API. Bodies of
// POST /upload larger than maxUploadBytes are rejected with 413.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, maxUploadBytes int64) {
	end := &HTTPEndpoint{uc: uc, maxUploadBytes: maxUploadBytes}

	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.Index))
	r.POST("/upload", end.Upload, pkgrouter.MiddlewareBodyLimit(maxUploadBytes))
}

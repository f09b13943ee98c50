package inbound

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgerror"
	"github.com/shandysiswandi/xlplot/internal/plot/entity"
	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

const formFieldFile = "file"

//go:embed web/index.html
var webFS embed.FS

//nolint:gochecknoglobals // parsed once at startup
var indexTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

type HTTPEndpoint struct {
	uc             uc
	maxUploadBytes int64
}

func (h *HTTPEndpoint) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, IndexPage{MaxUploadBytes: h.maxUploadBytes}); err != nil {
		slog.ErrorContext(r.Context(), "failed to render index page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	file, err := extractUpload(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Plot(ctx, usecase.PlotInput{File: file})
	if err != nil {
		return nil, err
	}

	return toPlotResponse(result), nil
}

// extractUpload streams the multipart body and returns the first file part
// named "file". It returns nil without error when there is no such part, and
// never buffers anything but that part.
func extractUpload(r *http.Request) (*entity.Upload, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, nil
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}

		if part.FormName() != formFieldFile || !isFilePart(part) {
			_ = part.Close()
			continue
		}

		content, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return nil, bodyError(err)
		}

		return &entity.Upload{Filename: part.FileName(), Content: content}, nil
	}
}

// isFilePart reports whether the part carries a filename parameter, even an
// empty one. Parts without it are plain form values.
func isFilePart(part *multipart.Part) bool {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return false
	}
	_, ok := params["filename"]
	return ok
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return pkgerror.NewTooLarge("File too large", err)
	}
	return pkgerror.NewInvalidFormat("Malformed multipart body", err)
}

func toPlotResponse(result usecase.PlotResult) PlotResponse {
	return PlotResponse{
		X:      result.X,
		Y:      result.Y,
		XLabel: result.XLabel,
		YLabel: result.YLabel,
		Title:  result.Title,
	}
}

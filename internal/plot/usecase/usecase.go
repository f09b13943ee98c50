package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgerror"
	"github.com/shandysiswandi/xlplot/internal/plot/entity"
)

// Parser turns raw workbook bytes into the table of its first sheet.
type Parser interface {
	Parse(ctx context.Context, content []byte) (entity.Table, error)
}

type Dependency struct {
	Parser Parser
}

type Usecase struct {
	parser Parser
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		parser: dep.Parser,
	}
}

// Plot validates the upload, parses it and extracts the first two columns.
// Checks run in a fixed order and the first failure is returned.
func (u *Usecase) Plot(ctx context.Context, in PlotInput) (PlotResult, error) {
	if u.parser == nil {
		return PlotResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if in.File == nil {
		return PlotResult{}, NewMissingFieldError()
	}

	if in.File.Filename == "" {
		return PlotResult{}, newEmptyFilenameError()
	}

	if !AllowedFile(in.File.Filename) {
		return PlotResult{}, newUnsupportedExtensionError(in.File.Filename)
	}

	name := SanitizeFilename(in.File.Filename)

	table, err := u.parser.Parse(ctx, in.File.Content)
	if err != nil {
		slog.WarnContext(ctx, "failed to read spreadsheet", "filename", name, "size", len(in.File.Content), "error", err)
		return PlotResult{}, newParseFailureError(err)
	}

	if table.Width() < 2 || table.Height() < 1 {
		return PlotResult{}, newInsufficientShapeError(table.Width(), table.Height())
	}

	result, err := extractSeries(table)
	if err != nil {
		slog.WarnContext(ctx, "failed to convert y column", "filename", name, "error", err)
		return PlotResult{}, newParseFailureError(err)
	}

	slog.InfoContext(ctx, "spreadsheet plotted",
		"filename", name,
		"columns", table.Width(),
		"rows_read", result.RowsRead,
		"rows_kept", len(result.X),
	)

	return result, nil
}

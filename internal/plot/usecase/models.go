package usecase

import "github.com/shandysiswandi/xlplot/internal/plot/entity"

// PlotInput is one upload request. File is nil when the request carried no
// file part at all.
type PlotInput struct {
	File *entity.Upload
}

// PlotResult is the chart payload built from the first two columns. X and Y
// always have the same length and are aligned by row.
type PlotResult struct {
	X      []any
	Y      []float64
	XLabel string
	YLabel string
	Title  string

	// RowsRead counts the data rows before missing values were dropped.
	RowsRead int
}

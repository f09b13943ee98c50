package usecase

import (
	"fmt"

	"github.com/shandysiswandi/xlplot/internal/plot/entity"
)

// extractSeries builds the payload from columns 0 and 1 of table. A row is
// kept only when both cells hold a value; one unconvertible y fails the whole
// table.
func extractSeries(table entity.Table) (PlotResult, error) {
	labels := table.Labels()
	result := PlotResult{
		X:        make([]any, 0, table.Height()),
		Y:        make([]float64, 0, table.Height()),
		XLabel:   labels[0],
		YLabel:   labels[1],
		RowsRead: table.Height(),
	}
	result.Title = result.YLabel + " vs " + result.XLabel

	for i := 0; i < table.Height(); i++ {
		x, y := table.At(i, 0), table.At(i, 1)
		if x.Missing() || y.Missing() {
			continue
		}

		yv, err := y.Float()
		if err != nil {
			return PlotResult{}, fmt.Errorf("data row %d, column %q: %w", i+1, result.YLabel, err)
		}

		result.X = append(result.X, x.Value())
		result.Y = append(result.Y, yv)
	}

	return result, nil
}

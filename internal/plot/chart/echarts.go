package chart

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

// Render writes a standalone HTML page with a line chart of result: x values
// on a category axis, y values as the single series.
func Render(w io.Writer, result usecase.PlotResult) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: result.Title}),
		charts.WithTitleOpts(opts.Title{Title: result.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: result.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: result.YLabel}),
	)

	categories := make([]string, len(result.X))
	for i, v := range result.X {
		categories[i] = AxisLabel(v)
	}

	points := make([]opts.LineData, len(result.Y))
	for i, v := range result.Y {
		points[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(categories).AddSeries(result.YLabel, points)

	return line.Render(w)
}

// AxisLabel formats one x value for a category axis. Dates at midnight drop
// the clock.
func AxisLabel(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.DateTime)
	default:
		return fmt.Sprint(v)
	}
}

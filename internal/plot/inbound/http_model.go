package inbound

// PlotResponse is the body of a successful upload. X keeps each value's
// spreadsheet type (number, string, bool or RFC 3339 date); Y is numeric.
type PlotResponse struct {
	X      []any     `json:"x"`
	Y      []float64 `json:"y"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Title  string    `json:"title"`
}

type IndexPage struct {
	MaxUploadBytes int64
}

package entity

import (
	"strconv"
)

// Table is the first sheet of a workbook: the header row and the data rows
// below it. Rows may be ragged; cells past the end of a row are empty.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// NewTable splits grid into header and data rows. Data rows with no values
// at all are dropped.
func NewTable(grid [][]Cell) Table {
	if len(grid) == 0 {
		return Table{}
	}

	t := Table{Header: grid[0]}
	for _, row := range grid[1:] {
		if isBlank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	if isBlank(t.Header) && len(t.Rows) == 0 {
		return Table{}
	}

	return t
}

func isBlank(row []Cell) bool {
	for _, c := range row {
		if c.Kind != CellEmpty {
			return false
		}
	}
	return true
}

// Width is the number of columns: the length of the widest row, header included.
func (t Table) Width() int {
	width := len(t.Header)
	for _, row := range t.Rows {
		width = max(width, len(row))
	}
	return width
}

// Height is the number of data rows.
func (t Table) Height() int {
	return len(t.Rows)
}

// At returns the cell at data row i and column j.
func (t Table) At(i, j int) Cell {
	if i < 0 || i >= len(t.Rows) || j < 0 || j >= len(t.Rows[i]) {
		return Cell{}
	}
	return t.Rows[i][j]
}

// Labels returns one label per column. Blank headers become "Unnamed: N" and
// repeated labels get a ".1", ".2" suffix in order of appearance.
func (t Table) Labels() []string {
	width := t.Width()
	labels := make([]string, width)
	seen := make(map[string]int, width)

	for j := 0; j < width; j++ {
		label := ""
		if j < len(t.Header) {
			label = t.Header[j].Text()
		}
		if label == "" {
			label = "Unnamed: " + strconv.Itoa(j)
		}

		base := label
		for n := seen[base]; n > 0; n++ {
			candidate := base + "." + strconv.Itoa(n)
			if _, taken := seen[candidate]; !taken {
				label = candidate
				seen[base] = n + 1
				break
			}
		}
		if _, ok := seen[base]; !ok {
			seen[base] = 1
		}
		seen[label] = max(seen[label], 1)

		labels[j] = label
	}

	return labels
}

package sheet

import (
	"bytes"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/xuri/excelize/v2"

	"github.com/shandysiswandi/xlplot/internal/plot/entity"
)

// readXLS reads the first sheet of a BIFF8 workbook. Numbers keep their raw
// value and are turned into dates when the cell's number format is a date
// format, the same rule the xlsx path applies. Formula cells are not decoded
// and read as empty.
func readXLS(content []byte) (grid [][]entity.Cell, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			grid, err = nil, fmt.Errorf("%w: %v", ErrCorrupt, rvr)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if wb.GetNumberSheets() == 0 {
		return nil, ErrNoSheet
	}

	ws, err := wb.GetSheet(0)
	if err != nil {
		return nil, ErrNoSheet
	}

	s := &xlsSheet{wb: &wb, dateFmt: make(map[int]bool)}

	rows := ws.GetRows()
	grid = make([][]entity.Cell, len(rows))
	for i, row := range rows {
		cols := row.GetCols()
		cells := make([]entity.Cell, len(cols))
		for j, c := range cols {
			cells[j] = s.cell(c)
		}
		grid[i] = cells
	}

	return grid, nil
}

type xlsSheet struct {
	wb      *xls.Workbook
	dateFmt map[int]bool
}

func (s *xlsSheet) cell(c structure.CellData) entity.Cell {
	switch v := c.(type) {
	case *record.Number, *record.Rk:
		num := v.GetFloat64()
		if !s.hasDateFormat(v.GetXFIndex()) {
			return entity.Number(num)
		}
		t, err := excelize.ExcelDateToTime(num, false)
		if err != nil {
			return entity.Number(num)
		}
		return entity.Date(t)
	case *record.BoolErr:
		switch text := v.GetString(); text {
		case "TRUE":
			return entity.Bool(true)
		case "FALSE":
			return entity.Bool(false)
		default:
			return entity.String(text)
		}
	case *record.LabelSSt, *record.LabelBIFF8, *record.LabelBIFF5:
		if text := v.GetString(); text != "" {
			return entity.String(text)
		}
		return entity.Cell{}
	default:
		return entity.Cell{}
	}
}

// hasDateFormat resolves XF index to number format. A FORMAT record stored in
// the file wins over the built-in table.
func (s *xlsSheet) hasDateFormat(xfIndex int) bool {
	if isDate, ok := s.dateFmt[xfIndex]; ok {
		return isDate
	}

	xf := s.wb.GetXFbyIndex(xfIndex)
	id := xf.GetFormatIndex()

	isDate := isDateNumFmt(id)
	if f := s.wb.GetFormatByIndex(id); f.GetIndex() == id {
		if code := f.String(); code != "" {
			isDate = isDateFormatCode(code)
		}
	}
	s.dateFmt[xfIndex] = isDate

	return isDate
}

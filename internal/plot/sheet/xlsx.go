package sheet

import (
	"bytes"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shandysiswandi/xlplot/internal/plot/entity"
)

// isoDateLayouts are the forms a t="d" cell value is stored in.
//
//nolint:gochecknoglobals // read-only
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z",
	"20060102T150405Z",
	"20060102T150405.999",
	time.DateOnly,
	"15:04:05",
}

type xlsxSheet struct {
	f        *excelize.File
	name     string
	date1904 bool
	dateFmt  map[int]bool
}

func readXLSX(content []byte) ([][]entity.Cell, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	s := &xlsxSheet{
		f:       f,
		name:    sheets[0],
		dateFmt: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		s.date1904 = *props.Date1904
	}

	rows, err := f.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make([][]entity.Cell, len(rows))
	for i, row := range rows {
		cells := make([]entity.Cell, len(row))
		for j, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := s.cell(j+1, i+1, raw)
			if err != nil {
				return nil, err
			}
			cells[j] = cell
		}
		grid[i] = cells
	}

	return grid, nil
}

// cell types one raw value using the stored cell type and, for numbers, the
// number format of the cell style.
func (s *xlsxSheet) cell(col, row int, raw string) (entity.Cell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return entity.Cell{}, err
	}

	typ, err := s.f.GetCellType(s.name, ref)
	if err != nil {
		return entity.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return entity.Bool(raw == "1" || raw == "TRUE" || raw == "true"), nil
	case excelize.CellTypeDate:
		for _, layout := range isoDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return entity.Date(t), nil
			}
		}
		return entity.String(raw), nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return entity.String(raw), nil
		}
		isDate, err := s.hasDateFormat(ref)
		if err != nil {
			return entity.Cell{}, err
		}
		if !isDate {
			return entity.Number(num), nil
		}
		t, err := excelize.ExcelDateToTime(num, s.date1904)
		if err != nil {
			return entity.Number(num), nil
		}
		return entity.Date(t), nil
	default:
		return entity.String(raw), nil
	}
}

func (s *xlsxSheet) hasDateFormat(ref string) (bool, error) {
	styleID, err := s.f.GetCellStyle(s.name, ref)
	if err != nil {
		return false, err
	}

	if isDate, ok := s.dateFmt[styleID]; ok {
		return isDate, nil
	}

	style, err := s.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}

	isDate := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	s.dateFmt[styleID] = isDate

	return isDate, nil
}

package sheet

import (
	"context"
	"errors"

	"github.com/gabriel-vasile/mimetype"

	"github.com/shandysiswandi/xlplot/internal/plot/entity"
	"github.com/shandysiswandi/xlplot/internal/plot/usecase"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZip  = "application/zip"
	mimeXLS  = "application/vnd.ms-excel"
	mimeOLE  = "application/x-ole-storage"
)

var (
	// ErrNoSheet is returned for a workbook without any worksheet.
	ErrNoSheet = errors.New("workbook has no sheets")
	// ErrCorrupt is returned when a legacy workbook cannot be decoded.
	ErrCorrupt = errors.New("corrupt workbook")
)

// Reader reads the first sheet of an .xlsx or .xls workbook. The format is
// chosen from the content, not from the file name.
type Reader struct{}

var _ usecase.Parser = (*Reader)(nil)

func NewReader() *Reader {
	return &Reader{}
}

// Parse decodes content into a table. The first row is the header.
func (r *Reader) Parse(ctx context.Context, content []byte) (entity.Table, error) {
	if err := ctx.Err(); err != nil {
		return entity.Table{}, err
	}

	var (
		grid [][]entity.Cell
		err  error
	)

	switch detect(content) {
	case formatXLS:
		grid, err = readXLS(content)
	default:
		grid, err = readXLSX(content)
	}
	if err != nil {
		return entity.Table{}, err
	}

	return entity.NewTable(grid), nil
}

type format int

const (
	formatXLSX format = iota
	formatXLS
)

// detect walks the detected type and its parents. Anything that is not an
// OLE compound file goes to the xlsx decoder, which reports its own error.
func detect(content []byte) format {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		switch {
		case m.Is(mimeXLSX), m.Is(mimeZip):
			return formatXLSX
		case m.Is(mimeXLS), m.Is(mimeOLE):
			return formatXLS
		}
	}
	return formatXLSX
}

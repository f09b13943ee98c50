package sheet

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shakinm/xlsReader/xls/record"
	"github.com/xuri/excelize/v2"

	"github.com/shandysiswandi/xlplot/internal/plot/entity"
)

func buildXLSX(t *testing.T, fill func(f *excelize.File)) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	fill(f)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf.Bytes()
}

func setCells(t *testing.T, f *excelize.File, sheet string, values map[string]any) {
	t.Helper()
	for ref, v := range values {
		if err := f.SetCellValue(sheet, ref, v); err != nil {
			t.Fatalf("SetCellValue %s: %v", ref, err)
		}
	}
}

func TestReaderParseXLSX(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	content := buildXLSX(t, func(f *excelize.File) {
		setCells(t, f, "Sheet1", map[string]any{
			"A1": "Month",
			"B1": "Sales",
			"A2": "Jan",
			"B2": 10,
			"A3": day,
			"B3": 12.5,
			"A4": true,
			"B4": "NA",
		})
	})

	table, err := NewReader().Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if table.Width() != 2 || table.Height() != 3 {
		t.Fatalf("unexpected shape %dx%d", table.Width(), table.Height())
	}
	if labels := table.Labels(); labels[0] != "Month" || labels[1] != "Sales" {
		t.Fatalf("unexpected labels %v", labels)
	}

	if c := table.At(0, 0); c.Kind != entity.CellString || c.Str != "Jan" {
		t.Fatalf("A2: unexpected cell %+v", c)
	}
	if c := table.At(0, 1); c.Kind != entity.CellNumber || c.Num != 10 {
		t.Fatalf("B2: unexpected cell %+v", c)
	}
	if c := table.At(1, 0); c.Kind != entity.CellDate || !c.Time.Equal(day) {
		t.Fatalf("A3: unexpected cell %+v", c)
	}
	if c := table.At(2, 0); c.Kind != entity.CellBool || !c.Bool {
		t.Fatalf("A4: unexpected cell %+v", c)
	}
	if c := table.At(2, 1); !c.Missing() {
		t.Fatalf("B4: expected missing marker, got %+v", c)
	}
}

func TestReaderParseXLSXNumberFormats(t *testing.T) {
	content := buildXLSX(t, func(f *excelize.File) {
		setCells(t, f, "Sheet1", map[string]any{
			"A1": "x",
			"B1": "y",
			"A2": 45293,
			"B2": 45293,
		})

		dateCode := "dd/mm/yyyy"
		dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateCode})
		if err != nil {
			t.Fatalf("NewStyle: %v", err)
		}
		if err := f.SetCellStyle("Sheet1", "A2", "A2", dateStyle); err != nil {
			t.Fatalf("SetCellStyle: %v", err)
		}

		numCode := "#,##0.00"
		numStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numCode})
		if err != nil {
			t.Fatalf("NewStyle: %v", err)
		}
		if err := f.SetCellStyle("Sheet1", "B2", "B2", numStyle); err != nil {
			t.Fatalf("SetCellStyle: %v", err)
		}
	})

	table, err := NewReader().Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if c := table.At(0, 0); c.Kind != entity.CellDate || !c.Time.Equal(want) {
		t.Fatalf("expected date cell %v, got %+v", want, c)
	}
	if c := table.At(0, 1); c.Kind != entity.CellNumber || c.Num != 45293 {
		t.Fatalf("expected number cell, got %+v", c)
	}
}

func TestReaderParseXLSXFirstSheetOnly(t *testing.T) {
	content := buildXLSX(t, func(f *excelize.File) {
		setCells(t, f, "Sheet1", map[string]any{"A1": "only"})
		if _, err := f.NewSheet("Other"); err != nil {
			t.Fatalf("NewSheet: %v", err)
		}
		setCells(t, f, "Other", map[string]any{"A1": "a", "B1": "b", "A2": 1, "B2": 2})
	})

	table, err := NewReader().Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.Width() != 1 || table.Height() != 0 {
		t.Fatalf("expected first sheet only, got %dx%d", table.Width(), table.Height())
	}
}

func TestReaderParseXLSXEmptySheet(t *testing.T) {
	content := buildXLSX(t, func(f *excelize.File) {})

	table, err := NewReader().Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.Width() != 0 || table.Height() != 0 {
		t.Fatalf("expected empty table, got %dx%d", table.Width(), table.Height())
	}
}

func TestReaderParseInvalidContent(t *testing.T) {
	ole := make([]byte, 1024)
	copy(ole, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})

	tests := []struct {
		name    string
		content []byte
	}{
		{"text", []byte("month,sales\njan,10\n")},
		{"empty", nil},
		{"truncated zip", []byte("PK\x03\x04garbage")},
		{"bare ole header", ole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewReader().Parse(context.Background(), tt.content); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestReaderParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader().Parse(ctx, []byte("irrelevant"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDetect(t *testing.T) {
	xlsx := buildXLSX(t, func(f *excelize.File) {})
	ole := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, bytes.Repeat([]byte{0}, 600)...)

	if got := detect(xlsx); got != formatXLSX {
		t.Fatalf("xlsx detected as %v", got)
	}
	if got := detect(ole); got != formatXLS {
		t.Fatalf("ole detected as %v", got)
	}
	if got := detect([]byte("plain text")); got != formatXLSX {
		t.Fatalf("text detected as %v", got)
	}
}

func sameCell(a, b entity.Cell) bool {
	return a.Kind == b.Kind && a.Num == b.Num && a.Str == b.Str && a.Bool == b.Bool && a.Time.Equal(b.Time)
}

func TestReaderParseXLS(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "typed.xls"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := detect(content); got != formatXLS {
		t.Fatalf("fixture detected as %v", got)
	}

	table, err := NewReader().Parse(context.Background(), content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	day := func(d int) entity.Cell {
		return entity.Date(time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC))
	}
	want := entity.Table{
		Header: []entity.Cell{entity.String("Date"), entity.String("Amount"), entity.String("Note")},
		Rows: [][]entity.Cell{
			// built-in date format 14, amount in a custom currency format
			{day(2), entity.Number(1250.5), entity.String("first")},
			// integer RK number, blank record
			{day(9), entity.Number(7), {}},
			// custom yyyy-mm-dd date
			{day(10), {}},
			{day(11), entity.Number(3.25), entity.Bool(true)},
		},
	}

	if len(table.Header) != len(want.Header) || table.Height() != want.Height() {
		t.Fatalf("unexpected shape: header %d, rows %d", len(table.Header), table.Height())
	}
	for j, c := range want.Header {
		if !sameCell(table.Header[j], c) {
			t.Fatalf("header %d = %+v, want %+v", j, table.Header[j], c)
		}
	}
	for i, row := range want.Rows {
		if len(table.Rows[i]) != len(row) {
			t.Fatalf("row %d has %d cells, want %d", i, len(table.Rows[i]), len(row))
		}
		for j, c := range row {
			if got := table.At(i, j); !sameCell(got, c) {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", i, j, got, c)
			}
		}
	}
}

func TestReaderParseXLSCorrupt(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "typed.xls"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	// The header survives, the FAT and directory sectors do not.
	_, err = NewReader().Parse(context.Background(), content[:1024])
	if err == nil {
		t.Fatalf("expected error for truncated workbook")
	}
}

func TestXLSCellBoolErr(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want entity.Cell
	}{
		{"true", []byte{0, 0, 0, 0, 15, 0, 1, 0}, entity.Bool(true)},
		{"false", []byte{0, 0, 0, 0, 15, 0, 0, 0}, entity.Bool(false)},
		{"error value", []byte{0, 0, 0, 0, 15, 0, 42, 1}, entity.String("#N/A")},
	}

	s := &xlsSheet{dateFmt: make(map[int]bool)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := new(record.BoolErr)
			r.Read(tt.raw)

			got := s.cell(r)
			if !sameCell(got, tt.want) {
				t.Fatalf("cell = %+v, want %+v", got, tt.want)
			}
			if tt.name == "error value" && !got.Missing() {
				t.Fatalf("expected #N/A to read as missing")
			}
		})
	}
}

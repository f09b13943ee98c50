package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CellKind is the type of a parsed spreadsheet cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellNumber
	CellString
	CellBool
	CellDate
)

func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellString:
		return "string"
	case CellBool:
		return "bool"
	case CellDate:
		return "date"
	default:
		return "empty"
	}
}

// ErrNotNumeric is returned by Cell.Float for values that have no numeric form.
var ErrNotNumeric = errors.New("value is not numeric")

// missingMarkers are text values read as missing data.
//
//nolint:gochecknoglobals // read-only lookup table
var missingMarkers = toSet(
	"",
	"#N/A",
	"#N/A N/A",
	"#NA",
	"-1.#IND",
	"-1.#QNAN",
	"-NaN",
	"-nan",
	"1.#IND",
	"1.#QNAN",
	"<NA>",
	"N/A",
	"NA",
	"NULL",
	"NaN",
	"None",
	"n/a",
	"nan",
	"null",
)

func toSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Cell is one typed spreadsheet value. Only the field matching Kind is set.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
	Bool bool
	Time time.Time
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Num: v}
}

// String returns a text cell.
func String(v string) Cell {
	return Cell{Kind: CellString, Str: v}
}

// Bool returns a boolean cell.
func Bool(v bool) Cell {
	return Cell{Kind: CellBool, Bool: v}
}

// Date returns a date/time cell.
func Date(v time.Time) Cell {
	return Cell{Kind: CellDate, Time: v}
}

// Missing reports whether the cell holds no usable value: it is empty, or its
// text is one of the conventional NA markers.
func (c Cell) Missing() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString:
		_, ok := missingMarkers[c.Str]
		return ok
	case CellNumber:
		return math.IsNaN(c.Num)
	default:
		return false
	}
}

// Value returns the cell as a JSON-friendly value keeping its original type.
func (c Cell) Value() any {
	switch c.Kind {
	case CellNumber:
		return c.Num
	case CellString:
		return c.Str
	case CellBool:
		return c.Bool
	case CellDate:
		return c.Time
	default:
		return nil
	}
}

// Float coerces the cell to a finite float64. Booleans become 1 or 0 and text
// is parsed after trimming surrounding space.
func (c Cell) Float() (float64, error) {
	switch c.Kind {
	case CellNumber:
		if math.IsInf(c.Num, 0) || math.IsNaN(c.Num) {
			return 0, fmt.Errorf("%w: %v", ErrNotNumeric, c.Num)
		}
		return c.Num, nil
	case CellBool:
		if c.Bool {
			return 1, nil
		}
		return 0, nil
	case CellString:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Str), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, c.Str)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s value %s", ErrNotNumeric, c.Kind, c.Text())
	}
}

// Text renders the cell the way a column header shows it.
func (c Cell) Text() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellString:
		return c.Str
	case CellBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case CellDate:
		return c.Time.Format(time.DateTime)
	default:
		return ""
	}
}

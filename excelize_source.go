package gridaxis

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelizeSource adapts one worksheet of an excelize workbook into the
// engine's Source interfaces. The sheet is read once at construction: the
// engine's source-swap contract treats a changed workbook as a new source,
// so replace the ExcelizeSource (Grid.SetSource) rather than mutating the
// file behind one.
type ExcelizeSource struct {
	sheet   string
	headers []string
	rows    [][]any
	cols    int
}

// NewExcelizeSource reads a worksheet whose first row holds column headers;
// the remaining rows become data rows keyed by those headers.
func NewExcelizeSource(f *excelize.File, sheet string) (*ExcelizeSource, error) {
	return readSheet(f, sheet, true)
}

// NewExcelizeRawSource reads a worksheet with no header row: every sheet row
// is a data row, and records are keyed by column letters ("A", "B", …).
func NewExcelizeRawSource(f *excelize.File, sheet string) (*ExcelizeSource, error) {
	return readSheet(f, sheet, false)
}

// OpenExcelizeSource opens an xlsx file and reads the named sheet with a
// header row.
func OpenExcelizeSource(path, sheet string) (*ExcelizeSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return NewExcelizeSource(f, sheet)
}

func readSheet(f *excelize.File, sheet string, headerRow bool) (*ExcelizeSource, error) {
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}

	src := &ExcelizeSource{sheet: sheet}
	dataStart := 0
	if headerRow && len(raw) > 0 {
		src.headers = append([]string(nil), raw[0]...)
		src.cols = len(raw[0])
		dataStart = 1
	}

	for _, row := range raw[dataStart:] {
		cells := make([]any, len(row))
		for i, v := range row {
			cells[i] = cellValue(v)
		}
		if len(row) > src.cols {
			src.cols = len(row)
		}
		src.rows = append(src.rows, cells)
	}

	if !headerRow {
		src.headers = make([]string, src.cols)
		for i := range src.headers {
			src.headers[i] = columnName(i)
		}
	}
	return src, nil
}

// cellValue converts excelize's string cell representation: numeric text
// reads as float64 so sorting and conditions compare numerically.
func cellValue(v string) any {
	if v == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// Sheet returns the worksheet name this source was read from.
func (s *ExcelizeSource) Sheet() string { return s.sheet }

// Headers returns the column header names.
func (s *ExcelizeSource) Headers() []string {
	return append([]string(nil), s.headers...)
}

// RowCount returns the number of data rows.
func (s *ExcelizeSource) RowCount() int { return len(s.rows) }

// ColumnCount returns the widest row width seen in the sheet.
func (s *ExcelizeSource) ColumnCount() int { return s.cols }

// CellValue returns the value at the physical row/column, or nil when the
// position is empty or out of range.
func (s *ExcelizeSource) CellValue(row, col int) any {
	if row < 0 || row >= len(s.rows) {
		return nil
	}
	r := s.rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Record returns the physical row keyed by header names. Rows out of range
// return nil.
func (s *ExcelizeSource) Record(row int) map[string]any {
	if row < 0 || row >= len(s.rows) {
		return nil
	}
	rec := make(map[string]any, len(s.headers))
	for col, name := range s.headers {
		if name == "" {
			name = columnName(col)
		}
		rec[name] = s.CellValue(row, col)
	}
	return rec
}

// columnName converts a 0-based column index to a spreadsheet column name.
// 0→"A", 25→"Z", 26→"AA"
func columnName(col int) string {
	result := ""
	col++
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

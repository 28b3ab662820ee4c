package gridaxis

// Source is the data-access collaborator the engine validates against. Counts
// are queried live on every validation and mapping rebuild; implementations
// that snapshot their backing store should be swapped out wholesale via
// Grid.SetSource rather than mutated in place.
type Source interface {
	RowCount() int
	ColumnCount() int
}

// ValueSource is a Source that can produce individual cell values. The sort
// plugin requires it.
type ValueSource interface {
	Source
	// CellValue returns the value at the physical row/column position, or
	// nil when the position is empty.
	CellValue(row, col int) any
}

// RecordSource is a Source that can present a physical row as a named record.
// Condition-based hiding evaluates expressions against these records.
type RecordSource interface {
	Source
	Record(row int) map[string]any
}

// SliceSource is an in-memory Source backed by a column name list and row
// slices. Short rows read as nil cells.
type SliceSource struct {
	Columns []string
	Rows    [][]any
}

// NewSliceSource creates a SliceSource.
func NewSliceSource(columns []string, rows [][]any) *SliceSource {
	return &SliceSource{Columns: columns, Rows: rows}
}

// RowCount returns the number of data rows.
func (s *SliceSource) RowCount() int { return len(s.Rows) }

// ColumnCount returns the number of declared columns.
func (s *SliceSource) ColumnCount() int { return len(s.Columns) }

// CellValue returns the value at row/col, or nil when out of range.
func (s *SliceSource) CellValue(row, col int) any {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Record returns the row keyed by column names. Rows out of range return nil.
func (s *SliceSource) Record(row int) map[string]any {
	if row < 0 || row >= len(s.Rows) {
		return nil
	}
	rec := make(map[string]any, len(s.Columns))
	for col, name := range s.Columns {
		rec[name] = s.CellValue(row, col)
	}
	return rec
}

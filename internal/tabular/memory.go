package tabular

import "io"

// MemorySink captures sheets and rows in memory. It backs layout tests so
// they can assert on structure without decoding a workbook.
type MemorySink struct {
	Sheets []*MemorySheet
}

// MemorySheet records everything written to one sheet.
type MemorySheet struct {
	Name      string
	Rows      [][]Cell
	AutoSized bool
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) CreateSheet(name string) (Sheet, error) {
	sheet := &MemorySheet{Name: name}
	s.Sheets = append(s.Sheets, sheet)
	return sheet, nil
}

func (s *MemorySink) Flush(w io.Writer) error {
	return nil
}

func (s *MemorySink) Close() error {
	return nil
}

// Sheet returns the captured sheet with the given name, or nil.
func (s *MemorySink) Sheet(name string) *MemorySheet {
	for _, sheet := range s.Sheets {
		if sheet.Name == name {
			return sheet
		}
	}
	return nil
}

// SheetNames returns the captured sheet names in creation order.
func (s *MemorySink) SheetNames() []string {
	names := make([]string, len(s.Sheets))
	for i, sheet := range s.Sheets {
		names[i] = sheet.Name
	}
	return names
}

func (sh *MemorySheet) AppendRow(cells []Cell) error {
	row := make([]Cell, len(cells))
	copy(row, cells)
	sh.Rows = append(sh.Rows, row)
	return nil
}

func (sh *MemorySheet) AutoSize() error {
	sh.AutoSized = true
	return nil
}

// CellValue returns the value at (row, col), or nil when the cell was never
// written.
func (sh *MemorySheet) CellValue(row, col int) any {
	if row >= len(sh.Rows) || col >= len(sh.Rows[row]) {
		return nil
	}
	return sh.Rows[row][col].Value
}

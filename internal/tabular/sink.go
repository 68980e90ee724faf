package tabular

import (
	"io"

	"github.com/shopspring/decimal"
)

// Style selects how a cell is rendered by the concrete sink.
type Style int

const (
	// StyleDefault is a plain cell.
	StyleDefault Style = iota
	// StyleHeader is bold, left aligned.
	StyleHeader
	// StyleMoney is a numeric cell with a two-decimal format.
	StyleMoney
)

// Cell is one value destined for a sheet, with its rendering style.
type Cell struct {
	Value any
	Style Style
}

// String returns a plain string cell.
func String(v string) Cell {
	return Cell{Value: v}
}

// Header returns a bold, left-aligned header cell.
func Header(v string) Cell {
	return Cell{Value: v, Style: StyleHeader}
}

// Int returns a plain numeric cell.
func Int(n int) Cell {
	return Cell{Value: n}
}

// Money returns a numeric cell rendered with two decimal places.
func Money(d decimal.Decimal) Cell {
	return Cell{Value: d, Style: StyleMoney}
}

// Empty returns a blank filler cell.
func Empty() Cell {
	return Cell{Value: ""}
}

// Headers maps a list of column titles to header cells.
func Headers(titles ...string) []Cell {
	cells := make([]Cell, len(titles))
	for i, t := range titles {
		cells[i] = Header(t)
	}
	return cells
}

// Sheet accepts rows for one sheet of the destination document.
type Sheet interface {
	// AppendRow writes the next row. Cell order is column order; leading
	// Empty cells indent a row.
	AppendRow(cells []Cell) error
	// AutoSize fits every column of the sheet to its content. Called once
	// after all rows are written.
	AutoSize() error
}

// Sink is an abstract tabular destination. Aggregation and layout code
// depends only on this, never on a concrete spreadsheet library.
type Sink interface {
	// CreateSheet adds a named sheet. Sheets appear in creation order.
	CreateSheet(name string) (Sheet, error)
	// Flush encodes the document and writes it to w in one pass.
	Flush(w io.Writer) error
	// Close releases sink resources. Safe to call after a failed Flush;
	// no further writes may follow.
	Close() error
}

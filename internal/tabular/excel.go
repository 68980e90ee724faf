package tabular

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	ierr "github.com/usell/billing/internal/errors"
)

const moneyNumFmt = "0.00"

// ExcelSink writes an XLSX workbook through excelize.
type ExcelSink struct {
	file       *excelize.File
	headerStyle int
	moneyStyle  int
	sheetCount  int
}

// NewExcelSink creates an empty workbook with the header and money styles
// registered.
func NewExcelSink() (*ExcelSink, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to register header style").
			Mark(ierr.ErrSystem)
	}

	numFmt := moneyNumFmt
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to register money style").
			Mark(ierr.ErrSystem)
	}

	return &ExcelSink{
		file:        f,
		headerStyle: headerStyle,
		moneyStyle:  moneyStyle,
	}, nil
}

// CreateSheet adds a named sheet to the workbook. The first sheet replaces
// the workbook's default sheet so no empty "Sheet1" survives.
func (s *ExcelSink) CreateSheet(name string) (Sheet, error) {
	if s.sheetCount == 0 {
		if err := s.file.SetSheetName(s.file.GetSheetName(0), name); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("failed to create sheet %q", name).
				Mark(ierr.ErrSystem)
		}
	} else {
		if _, err := s.file.NewSheet(name); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("failed to create sheet %q", name).
				Mark(ierr.ErrSystem)
		}
	}
	s.sheetCount++
	return &excelSheet{sink: s, name: name}, nil
}

// Flush encodes the workbook to w.
func (s *ExcelSink) Flush(w io.Writer) error {
	if err := s.file.Write(w); err != nil {
		return ierr.WithError(err).
			WithHint("failed to write workbook").
			Mark(ierr.ErrSystem)
	}
	return nil
}

// Close releases the workbook.
func (s *ExcelSink) Close() error {
	return s.file.Close()
}

type excelSheet struct {
	sink    *ExcelSink
	name    string
	nextRow int
	// widest content seen per column, in characters
	colWidths []float64
}

func (sh *excelSheet) AppendRow(cells []Cell) error {
	sh.nextRow++
	for i, cell := range cells {
		axis, err := excelize.CoordinatesToCellName(i+1, sh.nextRow)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("invalid cell position on sheet %q", sh.name).
				Mark(ierr.ErrSystem)
		}

		value, display := renderValue(cell)
		if err := sh.sink.file.SetCellValue(sh.name, axis, value); err != nil {
			return ierr.WithError(err).
				WithHintf("failed to write cell %s on sheet %q", axis, sh.name).
				Mark(ierr.ErrSystem)
		}

		switch cell.Style {
		case StyleHeader:
			err = sh.sink.file.SetCellStyle(sh.name, axis, axis, sh.sink.headerStyle)
		case StyleMoney:
			err = sh.sink.file.SetCellStyle(sh.name, axis, axis, sh.sink.moneyStyle)
		}
		if err != nil {
			return ierr.WithError(err).
				WithHintf("failed to style cell %s on sheet %q", axis, sh.name).
				Mark(ierr.ErrSystem)
		}

		sh.trackWidth(i, display)
	}
	return nil
}

// AutoSize fits each column to the widest content written to it.
func (sh *excelSheet) AutoSize() error {
	for i, width := range sh.colWidths {
		if width == 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return ierr.WithError(err).
				WithHintf("invalid column on sheet %q", sh.name).
				Mark(ierr.ErrSystem)
		}
		if err := sh.sink.file.SetColWidth(sh.name, col, col, width+2); err != nil {
			return ierr.WithError(err).
				WithHintf("failed to size column %s on sheet %q", col, sh.name).
				Mark(ierr.ErrSystem)
		}
	}
	return nil
}

func (sh *excelSheet) trackWidth(col int, display string) {
	for col >= len(sh.colWidths) {
		sh.colWidths = append(sh.colWidths, 0)
	}
	if w := float64(len(display)); w > sh.colWidths[col] {
		sh.colWidths[col] = w
	}
}

// renderValue converts a Cell value into what excelize stores plus the
// display text used for column sizing. Money cells become floats so the
// two-decimal number format applies.
func renderValue(cell Cell) (any, string) {
	switch v := cell.Value.(type) {
	case decimal.Decimal:
		return v.InexactFloat64(), v.StringFixed(2)
	case string:
		return v, v
	default:
		return v, fmt.Sprint(v)
	}
}

package tabular

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func flushAndReopen(t *testing.T, sink *ExcelSink) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, sink.Flush(&buf))
	require.NoError(t, sink.Close())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExcelSinkFirstSheetReplacesDefault(t *testing.T) {
	sink, err := NewExcelSink()
	require.NoError(t, err)

	_, err = sink.CreateSheet("Summary")
	require.NoError(t, err)
	_, err = sink.CreateSheet("Details")
	require.NoError(t, err)

	f := flushAndReopen(t, sink)
	assert.Equal(t, []string{"Summary", "Details"}, f.GetSheetList())
}

func TestExcelSinkRoundTrip(t *testing.T) {
	sink, err := NewExcelSink()
	require.NoError(t, err)

	sheet, err := sink.CreateSheet("Data")
	require.NoError(t, err)

	require.NoError(t, sheet.AppendRow(Headers("Name", "Amount")))
	require.NoError(t, sheet.AppendRow([]Cell{
		String("widget"),
		Money(decimal.RequireFromString("12.50")),
	}))
	require.NoError(t, sheet.AppendRow([]Cell{Empty(), Int(7)}))
	require.NoError(t, sheet.AutoSize())

	f := flushAndReopen(t, sink)

	got := func(axis string) string {
		v, err := f.GetCellValue("Data", axis)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", got("A1"))
	assert.Equal(t, "Amount", got("B1"))
	assert.Equal(t, "widget", got("A2"))
	assert.Equal(t, "12.50", got("B2"))
	assert.Equal(t, "7", got("B3"))
}

func TestExcelSinkEmptyRows(t *testing.T) {
	sink, err := NewExcelSink()
	require.NoError(t, err)

	sheet, err := sink.CreateSheet("Spaced")
	require.NoError(t, err)

	require.NoError(t, sheet.AppendRow([]Cell{String("first")}))
	require.NoError(t, sheet.AppendRow([]Cell{}))
	require.NoError(t, sheet.AppendRow([]Cell{String("third")}))

	f := flushAndReopen(t, sink)

	v, err := f.GetCellValue("Spaced", "A3")
	require.NoError(t, err)
	assert.Equal(t, "third", v, "blank rows must still advance the cursor")
}

func TestExcelSinkAutoSizeTracksWidestCell(t *testing.T) {
	sink, err := NewExcelSink()
	require.NoError(t, err)

	sheet, err := sink.CreateSheet("Widths")
	require.NoError(t, err)

	require.NoError(t, sheet.AppendRow([]Cell{String("short")}))
	require.NoError(t, sheet.AppendRow([]Cell{String("a considerably longer value")}))
	require.NoError(t, sheet.AutoSize())

	f := flushAndReopen(t, sink)

	width, err := f.GetColWidth("Widths", "A")
	require.NoError(t, err)
	assert.InDelta(t, float64(len("a considerably longer value"))+2, width, 0.5)
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkbook(t *testing.T) *Workbook {
	t.Helper()
	return NewWorkbook(filepath.Join(t.TempDir(), "cms_data.xlsx"))
}

func TestInitializeCreatesAllSheetsEmpty(t *testing.T) {
	wb := newTestWorkbook(t)
	require.NoError(t, wb.Initialize())

	_, err := os.Stat(wb.Path())
	require.NoError(t, err)

	for _, sheet := range sheetNames {
		assert.Empty(t, wb.Load(sheet), "sheet %s should start empty", sheet)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	wb := newTestWorkbook(t)
	require.NoError(t, wb.Initialize())

	row := []string{"1", "Ama", "677000000", "ama@example.com", "Douala", "VIP"}
	require.NoError(t, wb.Save(SheetClients, [][]string{row}))

	// A second Initialize must not wipe existing data.
	require.NoError(t, wb.Initialize())
	got := wb.Load(SheetClients)
	require.Len(t, got, 1)
	assert.Equal(t, row, got[0])
}

func TestLoadMissingFileReadsAsEmpty(t *testing.T) {
	wb := newTestWorkbook(t)
	assert.Empty(t, wb.Load(SheetOrders))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	wb := newTestWorkbook(t)
	require.NoError(t, wb.Initialize())

	rows := [][]string{
		{"1", "1", "WDF", "10", "2025-08-01", "2025-08-03", "Processing", "no starch", "0", "5000"},
		{"2", "1", "Bedding", "2", "2025-08-02", "2025-08-05", "Ready", "duvet", "500", "2900"},
	}
	require.NoError(t, wb.Save(SheetOrders, rows))
	assert.Equal(t, rows, wb.Load(SheetOrders))
}

func TestSaveReplacesSheetWholesale(t *testing.T) {
	wb := newTestWorkbook(t)
	require.NoError(t, wb.Initialize())

	require.NoError(t, wb.Save(SheetCosts, [][]string{
		{"1", "2025-07-01", "Supplies", "detergent", "2000", "Variable", ""},
		{"2", "2025-07-02", "Maintenance", "machine belt", "1500", "Fixed", ""},
	}))
	require.NoError(t, wb.Save(SheetCosts, [][]string{
		{"3", "2025-07-03", "Others", "misc", "800", "Variable", ""},
	}))

	got := wb.Load(SheetCosts)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0][0])
}

func TestSaveLeavesOtherSheetsUntouched(t *testing.T) {
	wb := newTestWorkbook(t)
	require.NoError(t, wb.Initialize())

	clientRow := []string{"1", "Ama", "677000000", "ama@example.com", "Douala", "regular"}
	require.NoError(t, wb.Save(SheetClients, [][]string{clientRow}))
	require.NoError(t, wb.Save(SheetPayments, [][]string{
		{"1", "1", "2000", "2025-08-01", "Cash", "Partial", "deposit"},
	}))

	got := wb.Load(SheetClients)
	require.Len(t, got, 1)
	assert.Equal(t, clientRow, got[0])
}

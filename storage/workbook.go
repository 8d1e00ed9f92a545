// Package storage persists the four record collections as sheets in a
// single xlsx workbook. Every save rewrites one sheet wholesale; there is
// no locking, so concurrent writers are last-write-wins.
package storage

import (
	"os"

	"github.com/xuri/excelize/v2"
)

const (
	SheetClients  = "clients"
	SheetOrders   = "orders"
	SheetPayments = "payments"
	SheetCosts    = "costs"
)

var sheetNames = []string{SheetClients, SheetOrders, SheetPayments, SheetCosts}

var sheetHeaders = map[string][]string{
	SheetClients:  {"client_id", "full_name", "phone", "email", "address", "notes"},
	SheetOrders:   {"order_id", "client_id", "service_type", "weight_count", "pickup_date", "due_date", "status", "special_instructions", "delivery_fee", "total_fee"},
	SheetPayments: {"payment_id", "order_id", "amount_paid", "payment_date", "payment_method", "payment_status", "notes"},
	SheetCosts:    {"expense_id", "date_incurred", "category", "description", "amount", "fixed_variable", "notes"},
}

type Workbook struct {
	path string
}

func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

func (w *Workbook) Path() string {
	return w.path
}

// Initialize creates the workbook with all four sheets empty except for
// their header rows. It is a no-op when the file already exists, even if
// a sheet is missing or has drifted from the expected schema.
func (w *Workbook) Initialize() error {
	if _, err := os.Stat(w.path); err == nil {
		return nil
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(0)
	for _, name := range sheetNames {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		header := sheetHeaders[name]
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	return f.SaveAs(w.path)
}

// Load returns the data rows (header excluded) of the named sheet. A
// missing file, a missing sheet or an unreadable workbook all read as an
// empty table; no error reaches the caller.
func (w *Workbook) Load(sheet string) [][]string {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

// Save replaces the named sheet's contents with the given rows, leaving
// every other sheet as it is on disk.
func (w *Workbook) Save(sheet string, rows [][]string) error {
	f, err := excelize.OpenFile(w.path)
	fresh := err != nil
	if fresh {
		f = excelize.NewFile()
	}
	defer func() { _ = f.Close() }()

	// Drop and recreate the sheet; the placeholder keeps the workbook
	// from momentarily holding zero sheets.
	const placeholder = "__rewrite__"
	if _, err := f.NewSheet(placeholder); err != nil {
		return err
	}
	_ = f.DeleteSheet(sheet)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.DeleteSheet(placeholder); err != nil {
		return err
	}
	if fresh {
		_ = f.DeleteSheet("Sheet1")
	}

	header := sheetHeaders[sheet]
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SaveAs(w.path)
}

// utils/dates.go
package utils

import (
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const DateLayout = "2006-01-02"

var dateFormats = []string{
	DateLayout,
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseDate coerces a stored date cell to a time. Spreadsheet edits can
// leave dates as numeric serials, so those are accepted alongside the
// usual text formats. Malformed values yield the zero time and false;
// callers exclude those rows from date filters rather than failing.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		// Serial 20000 is 1954-10-03; plain years never fall in this range.
		if serial >= 20000 && serial <= 80000 {
			if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return BeginningOfDay(parsed), true
			}
		}
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return BeginningOfDay(parsed), true
		}
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return BeginningOfDay(parsed), true
	}
	return time.Time{}, false
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey buckets a time for monthly grouping, e.g. "2025-07".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

package utils

import (
	"fmt"
	"time"
)

// FormatReceiptNumber builds a rent receipt number from a yearly sequence,
// e.g. RCP-2026-000124
func FormatReceiptNumber(year, sequence int) string {
	return fmt.Sprintf("RCP-%04d-%06d", year, sequence)
}

// FirstOfMonth returns midnight UTC on the first day of t's month
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

package locale

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// HumanizeDateString reformats a wire date "YYYY-MM-DD" as "DD.MM.YYYY".
// Components are reordered verbatim: out-of-range values round-trip
// unchanged ("2024-13-40" becomes "40.13.2024"). The backend has always
// sent valid dates, so suspicious input is only logged, not rejected.
func HumanizeDateString(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	year, month, day := parts[0], parts[1], parts[2]
	if !plausibleDate(year, month, day) {
		slog.Warn("humanizing out-of-range date", "date", date)
	}
	return fmt.Sprintf("%s.%s.%s", day, month, year)
}

// HumanizeDate formats a date value as "DD.MM.YYYY" with zero padding.
func HumanizeDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}

// DeHumanizeDate formats a date value as the wire form "YYYY-MM-DD".
func DeHumanizeDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ToDateObj parses a wire date "YYYY-MM-DD". An empty string means "today",
// matching the behavior the list edit form relies on when no date is set.
func ToDateObj(dateString string) time.Time {
	if dateString == "" {
		return time.Now()
	}
	parts := strings.SplitN(dateString, "-", 3)
	if len(parts) != 3 {
		return time.Now()
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

func plausibleDate(year, month, day string) bool {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return false
	}
	_, err = strconv.Atoi(year)
	return err == nil
}

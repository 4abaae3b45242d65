// Package date holds the calendar date value and the transcoder that turns
// two-digit-year clipboard text into its four-digit-year form.
//
// Parsing:
//
//	t := date.Default()
//	d, ok := t.Parse(" 01/02/21 ") // d = 2021-01-02, ok = true
//
// Formatting:
//
//	t.Format(d) // "01/02/2021"
//
// Century inference for two-digit years is owned by the standard library's
// time.Parse: years 69-99 map to 1969-1999 and 00-68 map to 2000-2068. The
// CenturyPivot constant documents that rule; this package never re-derives it.
package date

import (
	"fmt"
	"time"
)

// CenturyPivot is the first two-digit year that time.Parse maps into the
// 1900s. Informational only.
const CenturyPivot = 69

// Date is a validated calendar date. The zero value is not a valid date; use
// New or Transcoder.Parse to obtain one.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the date for year, month and day. ok is false when month is
// outside 1-12 or day does not exist in that month (leap years included).
// New never normalizes: February 30 is rejected, not turned into March 2.
func New(year int, month time.Month, day int) (Date, bool) {
	if month < time.January || month > time.December || day < 1 {
		return Date{}, false
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{year: year, month: month, day: day}, true
}

// fromTime truncates t to its calendar date in t's location.
func fromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Year returns the four-digit year.
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero value, which is never a valid date.
func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String renders d as YYYY-MM-DD for logs.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

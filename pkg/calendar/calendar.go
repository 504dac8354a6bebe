// Package calendar is the read-only year → quarters → months → weeks → days
// model that calendar layouts consume.
//
// Layouts never do date arithmetic themselves; they only walk the structures
// built here. A [Month] is split into rows of seven slots starting at the
// configured week start; slots that fall outside the month are nil.
package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/plannergen/pkg/errors"
)

// DaysInWeek is the number of slots in every Week.
const DaysInWeek = 7

// Day is one calendar day.
type Day struct {
	Time time.Time
}

// Day returns the day of the month.
func (d Day) Day() int {
	return d.Time.Day()
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time.Weekday()
}

// Ref returns the anchor name used to link to this day.
func (d Day) Ref() string {
	return d.Time.Format("2006-01-02")
}

// Week is one row of seven days, either of a month grid or of a year.
type Week struct {
	// Number is the ISO week number of the row.
	Number int

	// Days holds DaysInWeek slots; nil marks a day outside the month, or
	// outside the year for the weeks of Year.Weeks.
	Days [DaysInWeek]*Day
}

// Month is a month laid out in weeks.
type Month struct {
	Year         int
	Month        time.Month
	WeekdayStart time.Weekday
	Weeks        []Week
}

// NewMonth builds the week grid for the given month.
func NewMonth(year int, month time.Month, weekdayStart time.Weekday) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	rowStart := weekStart(first, weekdayStart)

	m := Month{Year: year, Month: month, WeekdayStart: weekdayStart}
	for rowStart.Month() == month || rowStart.Before(first) {
		m.Weeks = append(m.Weeks, newWeek(rowStart, func(t time.Time) bool { return t.Month() == month }))
		rowStart = rowStart.AddDate(0, 0, DaysInWeek)
	}

	return m
}

// weekStart returns the last day on or before t that falls on start.
func weekStart(t time.Time, start time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(start) + DaysInWeek) % DaysInWeek
	return t.AddDate(0, 0, -offset)
}

// newWeek fills the seven days from rowStart, keeping only those in.
func newWeek(rowStart time.Time, in func(time.Time) bool) Week {
	var w Week
	for i := 0; i < DaysInWeek; i++ {
		day := rowStart.AddDate(0, 0, i)
		if day.Weekday() == time.Thursday {
			_, w.Number = day.ISOWeek()
		}
		if in(day) {
			w.Days[i] = &Day{Time: day}
		}
	}
	return w
}

// first returns the first day present in the week.
func (w Week) first() *Day {
	for _, d := range w.Days {
		if d != nil {
			return d
		}
	}
	return nil
}

// last returns the last day present in the week.
func (w Week) last() *Day {
	for i := DaysInWeek - 1; i >= 0; i-- {
		if w.Days[i] != nil {
			return w.Days[i]
		}
	}
	return nil
}

// HeadMonth returns the month of the first day in the week, or 0 for an
// empty week.
func (w Week) HeadMonth() time.Month {
	if d := w.first(); d != nil {
		return d.Time.Month()
	}
	return 0
}

// TailMonth returns the month of the last day in the week, or 0 for an
// empty week.
func (w Week) TailMonth() time.Month {
	if d := w.last(); d != nil {
		return d.Time.Month()
	}
	return 0
}

// Ref returns the anchor name used to link to this week. It is derived
// from the first day present, so it is unique within a year.
func (w Week) Ref() string {
	if d := w.first(); d != nil {
		return "week-" + d.Ref()
	}
	return "week"
}

// Name returns the English month name.
func (m Month) Name() string {
	return m.Month.String()
}

// Ref returns the anchor name used to link to this month.
func (m Month) Ref() string {
	return strings.ToLower(m.Month.String())
}

// Days returns every day of the month in order.
func (m Month) Days() []Day {
	var days []Day
	for _, w := range m.Weeks {
		for _, d := range w.Days {
			if d != nil {
				days = append(days, *d)
			}
		}
	}
	return days
}

// Year is the twelve months of one calendar year.
type Year struct {
	Number       int
	WeekdayStart time.Weekday
	months       []Month
}

// NewYear builds all twelve months of year.
func NewYear(year int, weekdayStart time.Weekday) Year {
	y := Year{Number: year, WeekdayStart: weekdayStart}
	for m := time.January; m <= time.December; m++ {
		y.months = append(y.months, NewMonth(year, m, weekdayStart))
	}
	return y
}

// Months returns the months of the year in order.
func (y Year) Months() []Month {
	return y.months
}

// Days returns every day of the year in order.
func (y Year) Days() []Day {
	var days []Day
	for _, m := range y.months {
		days = append(days, m.Days()...)
	}
	return days
}

// Weeks returns the weeks of the year in order. Every week starts on
// WeekdayStart; days of the first and last week that belong to the
// neighbouring years are nil.
func (y Year) Weeks() []Week {
	first := time.Date(y.Number, time.January, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(1, 0, 0)
	in := func(t time.Time) bool { return t.Year() == y.Number }

	var weeks []Week
	for rowStart := weekStart(first, y.WeekdayStart); rowStart.Before(next); rowStart = rowStart.AddDate(0, 0, DaysInWeek) {
		weeks = append(weeks, newWeek(rowStart, in))
	}
	return weeks
}

// MonthsInQuarter is the number of months in every Quarter.
const MonthsInQuarter = 3

// Quarter is three consecutive months of a year.
type Quarter struct {
	// Number is 1 to 4.
	Number int
	Months [MonthsInQuarter]Month
}

// Ref returns the anchor name used to link to this quarter, e.g. "q1".
func (q Quarter) Ref() string {
	return "q" + strconv.Itoa(q.Number)
}

// Quarters returns the four quarters of the year in order.
func (y Year) Quarters() []Quarter {
	quarters := make([]Quarter, 0, len(y.months)/MonthsInQuarter)
	for i := 0; i+MonthsInQuarter <= len(y.months); i += MonthsInQuarter {
		q := Quarter{Number: i/MonthsInQuarter + 1}
		copy(q.Months[:], y.months[i:i+MonthsInQuarter])
		quarters = append(quarters, q)
	}
	return quarters
}

// weekdays maps lowercase English names to weekdays.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses an English weekday name, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown weekday %q", s)
}

// Package littlecal lays out a month as a small calendar table.
//
// The heading row lists one-letter weekday labels starting at the month's
// week start; every following row is one week. An optional week-number column
// is attached to the left or right of every row, heading included, so all
// rows keep the same cell count.
package littlecal

import (
	"strings"
	"time"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/i18n"
	"github.com/matzehuels/plannergen/pkg/tex"
	"github.com/matzehuels/plannergen/pkg/tex/table"
)

// Placement is where the week-number column goes.
type Placement string

const (
	Left  Placement = "left"
	Right Placement = "right"
)

// ParsePlacement parses "left" or "right".
func ParsePlacement(s string) (Placement, error) {
	switch p := Placement(strings.ToLower(strings.TrimSpace(s))); p {
	case Left, Right:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPlacement, "week number placement must be left or right, got %q", s)
}

// Parameters controls the optional week-number column.
type Parameters struct {
	WithWeekNumbers     bool
	WeekNumberPlacement Placement
}

// DefaultParameters shows week numbers on the left.
func DefaultParameters() Parameters {
	return Parameters{WithWeekNumbers: true, WeekNumberPlacement: Left}
}

// weekdays is the canonical order that headings rotate from.
var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Option customizes a Calendar.
type Option func(*Calendar)

// WithBoxAdjuster replaces the finishing step applied by String.
func WithBoxAdjuster(adjust tex.BoxAdjuster) Option {
	return func(c *Calendar) { c.adjust = adjust }
}

// WithTableOptions passes options through to the underlying table.
func WithTableOptions(opts ...table.Option) Option {
	return func(c *Calendar) { c.tableOpts = append(c.tableOpts, opts...) }
}

// Calendar renders one month.
type Calendar struct {
	month     calendar.Month
	tr        i18n.Translator
	params    Parameters
	adjust    tex.BoxAdjuster
	tableOpts []table.Option
}

// New creates a calendar layout for month. An empty placement falls back
// to Left.
func New(month calendar.Month, tr i18n.Translator, params Parameters, opts ...Option) *Calendar {
	if params.WeekNumberPlacement == "" {
		params.WeekNumberPlacement = Left
	}
	c := &Calendar{
		month:  month,
		tr:     tr,
		params: params,
		adjust: tex.AdjustBox,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Table builds the month table: headings first, then one row per week.
func (c *Calendar) Table() *table.Table {
	t := table.New(c.tableOpts...)
	t.AddRow(c.headings())
	for _, w := range c.month.Weeks {
		t.AddRow(c.weekRow(w))
	}
	return t
}

// String renders the table through the box adjuster.
func (c *Calendar) String() string {
	return c.adjust(c.Table().String())
}

func (c *Calendar) headings() *table.Row {
	row := table.NewRow()
	for _, wd := range rotate(c.month.WeekdayStart) {
		row.Push(table.NewCell(c.tr.T("calendar.one_letter." + strings.ToLower(wd.String()))))
	}
	c.attach(row, table.NewCell(c.tr.T("calendar.one_letter.week")))
	return row
}

func (c *Calendar) weekRow(w calendar.Week) *table.Row {
	row := table.NewRow()
	for _, d := range w.Days {
		if d == nil {
			row.Push(table.Empty())
			continue
		}
		row.Push(table.NewCell(d.Day()))
	}
	c.attach(row, table.NewCell(w.Number))
	return row
}

func (c *Calendar) attach(row *table.Row, cell table.Cell) {
	if !c.params.WithWeekNumbers {
		return
	}
	switch c.params.WeekNumberPlacement {
	case Left:
		row.Unshift(cell)
	case Right:
		row.Push(cell)
	}
}

// rotate returns the canonical weekdays rotated so start comes first.
func rotate(start time.Weekday) []time.Weekday {
	idx := 0
	for i, wd := range weekdays {
		if wd == start {
			idx = i
			break
		}
	}
	return append(append([]time.Weekday(nil), weekdays[idx:]...), weekdays[:idx]...)
}

// Package common holds what template families share: the per-run context,
// page types, and parsing of the section parameters every family accepts.
package common

import (
	"fmt"
	"strings"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/i18n"
	"github.com/matzehuels/plannergen/pkg/layout/littlecal"
	"github.com/matzehuels/plannergen/pkg/planner/section"
	"github.com/matzehuels/plannergen/pkg/tex"
)

// Section names known to the built-in families.
const (
	TitleSection       = "title"
	AnnualSection      = "annual"
	QuarterliesSection = "quarterlies"
	MonthlySection     = "monthly"
	WeekliesSection    = "weeklies"
	DailySection       = "daily"
	NotesSection       = "notes"
	ToDoSection        = "todo"
)

// Context is what every component of one section gets from the
// configuration. It is read-only.
type Context struct {
	Config     *config.Config
	Translator i18n.Translator
	Year       calendar.Year
}

// NewContext loads the configured locale and builds the calendar year.
func NewContext(cfg *config.Config) (*Context, error) {
	tr, err := i18n.Load(cfg.Parameters.Locale)
	if err != nil {
		return nil, err
	}
	return &Context{
		Config:     cfg,
		Translator: tr,
		Year:       calendar.NewYear(cfg.Parameters.Year, cfg.Parameters.Weekday()),
	}, nil
}

// T translates key.
func (c *Context) T(key string) string {
	return c.Translator.T(key)
}

// MonthName returns the localized month name.
func (c *Context) MonthName(m calendar.Month) string {
	return c.T("calendar.months." + m.Ref())
}

// Link renders a hyperlink, or plain text when links are switched off.
func (c *Context) Link(ref, text string) string {
	if !c.Config.Parameters.ShowLinks {
		return text
	}
	return tex.Hyperlink(ref, text)
}

// Target renders a hyperlink anchor, or nothing when links are switched off.
func (c *Context) Target(ref string) string {
	if !c.Config.Parameters.ShowLinks {
		return ""
	}
	return tex.Hypertarget(ref, "")
}

// LeftHanded reports whether layouts should be mirrored.
func (c *Context) LeftHanded() bool {
	return c.Config.Parameters.Hand == config.HandLeft
}

// Index is the first page of an indexed section; it links to every
// numbered page.
type Index struct {
	Section string
	Count   int
}

// Ref returns the anchor of the index page.
func (i Index) Ref() string {
	return tex.Ref(i.Section, "index")
}

// Numbered is one numbered page of a section, starting at 1.
type Numbered struct {
	Section string
	N       int
}

// Ref returns the anchor of the page.
func (n Numbered) Ref() string {
	return tex.Ref(n.Section, n.N)
}

// NumberedPages returns count numbered pages.
func NumberedPages(name string, count int) []section.Page {
	pages := make([]section.Page, 0, count)
	for i := 1; i <= count; i++ {
		pages = append(pages, Numbered{Section: name, N: i})
	}
	return pages
}

// IndexedPages returns an index page followed by count numbered pages.
func IndexedPages(name string, count int) []section.Page {
	return append([]section.Page{Index{Section: name, Count: count}}, NumberedPages(name, count)...)
}

// MonthPages returns one page per month of y.
func MonthPages(y calendar.Year) []section.Page {
	months := y.Months()
	pages := make([]section.Page, len(months))
	for i, m := range months {
		pages[i] = m
	}
	return pages
}

// QuarterPages returns one page per quarter of y.
func QuarterPages(y calendar.Year) []section.Page {
	quarters := y.Quarters()
	pages := make([]section.Page, len(quarters))
	for i, q := range quarters {
		pages[i] = q
	}
	return pages
}

// WeekPages returns one page per week of y.
func WeekPages(y calendar.Year) []section.Page {
	weeks := y.Weeks()
	pages := make([]section.Page, len(weeks))
	for i, w := range weeks {
		pages[i] = w
	}
	return pages
}

// DayPages returns one page per day of y.
func DayPages(y calendar.Year) []section.Page {
	days := y.Days()
	pages := make([]section.Page, len(days))
	for i, d := range days {
		pages[i] = d
	}
	return pages
}

// PageCount reads the "pages" parameter.
func PageCount(opts config.SectionConfig, def int) (int, error) {
	n := opts.Params.Int("pages", def)
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "sections.%s.pages must be at least 1, got %d", opts.Name, n)
	}
	return n, nil
}

// LittleCalendar reads the little_calendar table of a section:
//
//	[sections.monthly.little_calendar]
//	with_week_numbers = true
//	week_number_placement = "right"
func LittleCalendar(opts config.SectionConfig) (littlecal.Parameters, error) {
	p := littlecal.DefaultParameters()
	sub := opts.Params.Sub("little_calendar")

	p.WithWeekNumbers = sub.Bool("with_week_numbers", p.WithWeekNumbers)
	if raw := sub.String("week_number_placement", ""); strings.TrimSpace(raw) != "" {
		placement, err := littlecal.ParsePlacement(raw)
		if err != nil {
			return littlecal.Parameters{}, fmt.Errorf("sections.%s.little_calendar: %w", opts.Name, err)
		}
		p.WeekNumberPlacement = placement
	}
	return p, nil
}

// UnexpectedPage reports a page type a component does not render.
func UnexpectedPage(component string, page section.Page) error {
	return errors.New(errors.ErrCodeInternal, "%s: unexpected page type %T", component, page)
}

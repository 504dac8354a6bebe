// Package mos is the months-on-sides template family: every page carries
// the twelve months as tabs in the margin and links to the calendar, to-do
// and notes sections in its header.
//
// Sections: title, annual, quarterlies, monthly, weeklies, daily, todo, notes.
package mos

import (
	"strconv"
	"time"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/layout/dotgrid"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/section"
	"github.com/matzehuels/plannergen/pkg/templates/common"
)

// Name is the family name used in template_name.
const Name = "mos"

// Default section parameters.
const (
	DefaultNotesPages      = 10
	DefaultToDoPages       = 10
	DefaultToDoLines       = 25
	DefaultDailyPriorities = 8
	DefaultDayStart        = 5
	DefaultDayEnd          = 23
)

// Family registers the months-on-sides components.
var Family registry.Family = family{}

type family struct{}

func (family) Name() string { return Name }

func (family) Register(r *registry.Registry) error {
	sections := map[string]registry.Components{
		common.TitleSection: {
			Header: func(*config.Config, config.SectionConfig) (section.Header, error) { return emptyHeader, nil },
			Body:   newTitleBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return []section.Page{ctx.Year}, nil
			}),
		},
		common.AnnualSection: {
			Header: headerFor(describeYear),
			Body:   newAnnualBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return []section.Page{ctx.Year}, nil
			}),
		},
		common.QuarterliesSection: {
			Header: headerFor(describeQuarter),
			Body:   newQuarterlyBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return common.QuarterPages(ctx.Year), nil
			}),
		},
		common.MonthlySection: {
			Header: headerFor(describeMonth),
			Body:   newMonthlyBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return common.MonthPages(ctx.Year), nil
			}),
		},
		common.WeekliesSection: {
			Header: headerFor(describeWeek),
			Body:   newWeeklyBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return common.WeekPages(ctx.Year), nil
			}),
		},
		common.DailySection: {
			Header: headerFor(describeDay),
			Body:   newDailyBody,
			Section: newSection(func(ctx *common.Context, _ config.SectionConfig) ([]section.Page, error) {
				return common.DayPages(ctx.Year), nil
			}),
		},
		common.NotesSection: {
			Header:  headerFor(describeIndexed("sections.notes_index", "sections.notes")),
			Body:    newNotesBody,
			Section: newSection(indexedPages(DefaultNotesPages)),
		},
		common.ToDoSection: {
			Header:  headerFor(describeIndexed("sections.todo_index", "sections.todo")),
			Body:    newToDoBody,
			Section: newSection(indexedPages(DefaultToDoPages)),
		},
	}

	for _, name := range []string{
		common.TitleSection, common.AnnualSection, common.QuarterliesSection,
		common.MonthlySection, common.WeekliesSection, common.DailySection,
		common.ToDoSection, common.NotesSection,
	} {
		if err := r.Register(Name, name, sections[name]); err != nil {
			return err
		}
	}
	return nil
}

var emptyHeader = section.HeaderFunc(func(section.Page) (string, error) { return "", nil })

// pagesFunc produces a section's pages from the run context.
type pagesFunc func(ctx *common.Context, opts config.SectionConfig) ([]section.Page, error)

func newSection(pages pagesFunc) registry.SectionFactory {
	return func(cfg *config.Config, opts config.SectionConfig, h section.Header, b section.Body) (section.Generator, error) {
		ctx, err := common.NewContext(cfg)
		if err != nil {
			return nil, err
		}
		return section.New(opts.Name, opts, h, b, section.PageSourceFunc(func() ([]section.Page, error) {
			return pages(ctx, opts)
		}))
	}
}

func indexedPages(def int) pagesFunc {
	return func(_ *common.Context, opts config.SectionConfig) ([]section.Page, error) {
		n, err := common.PageCount(opts, def)
		if err != nil {
			return nil, err
		}
		return common.IndexedPages(opts.Name, n), nil
	}
}

// headerFor builds a header factory around a page describer.
func headerFor(describe func(*common.Context) describeFunc) registry.HeaderFactory {
	return func(cfg *config.Config, _ config.SectionConfig) (section.Header, error) {
		ctx, err := common.NewContext(cfg)
		if err != nil {
			return nil, err
		}
		return newHeader(ctx, describe(ctx)), nil
	}
}

func describeYear(*common.Context) describeFunc {
	return func(page section.Page) (pageInfo, error) {
		y, ok := page.(calendar.Year)
		if !ok {
			return pageInfo{}, common.UnexpectedPage("mos annual header", page)
		}
		return pageInfo{
			Title:    strconv.Itoa(y.Number),
			Ref:      common.AnnualSection,
			Selected: "sections.calendar",
		}, nil
	}
}

func describeQuarter(ctx *common.Context) describeFunc {
	return func(page section.Page) (pageInfo, error) {
		q, ok := page.(calendar.Quarter)
		if !ok {
			return pageInfo{}, common.UnexpectedPage("mos quarterly header", page)
		}
		months := make([]time.Month, len(q.Months))
		for i, m := range q.Months {
			months[i] = m.Month
		}
		return pageInfo{
			Title:  ctx.T("sections.quarter") + " " + strconv.Itoa(q.Number),
			Ref:    q.Ref(),
			Months: months,
		}, nil
	}
}

func describeWeek(ctx *common.Context) describeFunc {
	return func(page section.Page) (pageInfo, error) {
		w, ok := page.(calendar.Week)
		if !ok {
			return pageInfo{}, common.UnexpectedPage("mos weekly header", page)
		}
		return pageInfo{
			Title:  ctx.T("sections.week") + " " + strconv.Itoa(w.Number),
			Ref:    w.Ref(),
			Months: []time.Month{w.HeadMonth(), w.TailMonth()},
		}, nil
	}
}

func describeMonth(ctx *common.Context) describeFunc {
	return func(page section.Page) (pageInfo, error) {
		m, ok := page.(calendar.Month)
		if !ok {
			return pageInfo{}, common.UnexpectedPage("mos monthly header", page)
		}
		return pageInfo{
			Title:    ctx.MonthName(m),
			Ref:      m.Ref(),
			Months:   []time.Month{m.Month},
			Selected: "sections.calendar",
		}, nil
	}
}

func describeDay(ctx *common.Context) describeFunc {
	return func(page section.Page) (pageInfo, error) {
		d, ok := page.(calendar.Day)
		if !ok {
			return pageInfo{}, common.UnexpectedPage("mos daily header", page)
		}
		month := ctx.Year.Months()[d.Time.Month()-1]
		return pageInfo{
			Title:  ctx.MonthName(month) + " " + strconv.Itoa(d.Day()),
			Ref:    d.Ref(),
			Months: []time.Month{d.Time.Month()},
		}, nil
	}
}

func describeIndexed(indexKey, selected string) func(*common.Context) describeFunc {
	return func(ctx *common.Context) describeFunc {
		return func(page section.Page) (pageInfo, error) {
			switch p := page.(type) {
			case common.Index:
				return pageInfo{Title: ctx.T(indexKey), Ref: p.Ref(), Selected: selected}, nil
			case common.Numbered:
				return pageInfo{Title: strconv.Itoa(p.N), Ref: p.Ref()}, nil
			}
			return pageInfo{}, common.UnexpectedPage("mos indexed header", page)
		}
	}
}

func newTitleBody(cfg *config.Config, _ config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	return titleBody{ctx: ctx}, nil
}

func newAnnualBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	params, err := common.LittleCalendar(opts)
	if err != nil {
		return nil, err
	}
	return annualBody{ctx: ctx, params: params}, nil
}

func newQuarterlyBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	params, err := common.LittleCalendar(opts)
	if err != nil {
		return nil, err
	}
	notes, err := dotgrid.New(opts.Params.String("notes.width", "18cm"), opts.Params.String("notes.height", "16cm"))
	if err != nil {
		return nil, err
	}
	return quarterlyBody{ctx: ctx, params: params, notes: notes}, nil
}

func newWeeklyBody(cfg *config.Config, _ config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	return weeklyBody{ctx: ctx}, nil
}

func newMonthlyBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	params, err := common.LittleCalendar(opts)
	if err != nil {
		return nil, err
	}
	notes, err := dotgrid.New(opts.Params.String("notes.width", "18cm"), opts.Params.String("notes.height", "6cm"))
	if err != nil {
		return nil, err
	}
	return monthlyBody{ctx: ctx, params: params, notes: notes}, nil
}

func newDailyBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	params, err := common.LittleCalendar(opts)
	if err != nil {
		return nil, err
	}
	notes, err := dotgrid.New(opts.Params.String("notes.width", "11cm"), opts.Params.String("notes.height", "9cm"))
	if err != nil {
		return nil, err
	}

	start := opts.Params.Int("day_start", DefaultDayStart)
	end := opts.Params.Int("day_end", DefaultDayEnd)
	if start < 0 || end > 23 || start > end {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "sections.%s: invalid hours %d..%d", opts.Name, start, end)
	}

	priorities := opts.Params.Int("priorities", DefaultDailyPriorities)
	if priorities < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "sections.%s.priorities must not be negative, got %d", opts.Name, priorities)
	}

	return dailyBody{
		ctx:        ctx,
		params:     params,
		priorities: priorities,
		hours:      [2]int{start, end},
		notes:      notes,
	}, nil
}

func newNotesBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	grid, err := dotgrid.New(opts.Params.String("grid.width", "18cm"), opts.Params.String("grid.height", "22cm"))
	if err != nil {
		return nil, err
	}
	return indexedBody{ctx: ctx, name: "mos notes body", page: notesPage(grid)}, nil
}

func newToDoBody(cfg *config.Config, opts config.SectionConfig) (section.Body, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	lines := opts.Params.Int("lines", DefaultToDoLines)
	if lines < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "sections.%s.lines must be at least 1, got %d", opts.Name, lines)
	}
	return indexedBody{ctx: ctx, name: "mos todo body", page: todoPage(lines)}, nil
}

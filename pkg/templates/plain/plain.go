// Package plain is a minimal template family with no navigation chrome:
// a section heading followed by the page content.
//
// Sections: monthly, notes.
package plain

import (
	"strconv"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/layout/dotgrid"
	"github.com/matzehuels/plannergen/pkg/layout/littlecal"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/section"
	"github.com/matzehuels/plannergen/pkg/templates/common"
	"github.com/matzehuels/plannergen/pkg/tex"
)

// Name is the family name used in template_name.
const Name = "plain"

// DefaultNotesPages is the number of note pages when "pages" is not set.
const DefaultNotesPages = 5

// Family registers the plain components.
var Family registry.Family = family{}

type family struct{}

func (family) Name() string { return Name }

func (family) Register(r *registry.Registry) error {
	if err := r.Register(Name, common.MonthlySection, registry.Components{
		Header:  newHeader,
		Body:    newMonthlyBody,
		Section: newMonthlySection,
	}); err != nil {
		return err
	}
	return r.Register(Name, common.NotesSection, registry.Components{
		Header:  newHeader,
		Body:    newNotesBody,
		Section: newNotesSection,
	})
}

// header renders "\section*{title}" with an anchor.
type header struct {
	ctx *common.Context
}

func newHeader(cfg *config.Config, _ config.SectionConfig) (section.Header, error) {
	ctx, err := common.NewContext(cfg)
	if err != nil {
		return nil, err
	}
	return header{ctx: ctx}, nil
}

func (h header) Generate(page section.Page) (string, error) {
	var title, ref string
	switch p := page.(type) {
	case calendar.Month:
		title, ref = h.ctx.MonthName(p)+" "+strconv.Itoa(p.Year), p.Ref()
	case common.Numbered:
		title, ref = h.ctx.T("sections.notes")+" "+strconv.Itoa(p.N), p.Ref()
	default:
		return "", common.UnexpectedPage("plain header", page)
	}
	return h.ctx.Target(ref) + tex.Command("section*", tex.Escape(title)) + tex.NL, nil
}

type monthlyBody struct {
	ctx    *common.Context
	params littlecal.Parameters
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
	return monthlyBody{ctx: ctx, params: params}, nil
}

func (b monthlyBody) Generate(page section.Page) (string, error) {
	month, ok := page.(calendar.Month)
	if !ok {
		return "", common.UnexpectedPage("plain monthly body", page)
	}
	return littlecal.New(month, b.ctx.Translator, b.params, littlecal.WithBoxAdjuster(tex.NoAdjust)).String(), nil
}

type notesBody struct {
	grid dotgrid.Grid
}

func newNotesBody(_ *config.Config, opts config.SectionConfig) (section.Body, error) {
	grid, err := dotgrid.New(opts.Params.String("grid.width", ""), opts.Params.String("grid.height", ""))
	if err != nil {
		return nil, err
	}
	return notesBody{grid: grid}, nil
}

func (b notesBody) Generate(section.Page) (string, error) {
	return b.grid.String(), nil
}

func newMonthlySection(cfg *config.Config, opts config.SectionConfig, h section.Header, b section.Body) (section.Generator, error) {
	year := calendar.NewYear(cfg.Parameters.Year, cfg.Parameters.Weekday())
	return section.New(opts.Name, opts, h, b, section.PageSourceFunc(func() ([]section.Page, error) {
		return common.MonthPages(year), nil
	}))
}

func newNotesSection(_ *config.Config, opts config.SectionConfig, h section.Header, b section.Body) (section.Generator, error) {
	n, err := common.PageCount(opts, DefaultNotesPages)
	if err != nil {
		return nil, err
	}
	return section.New(opts.Name, opts, h, b, section.PageSourceFunc(func() ([]section.Page, error) {
		return common.NumberedPages(opts.Name, n), nil
	}))
}

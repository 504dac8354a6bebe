package mos

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/planner/section"
	"github.com/matzehuels/plannergen/pkg/templates/common"
	"github.com/matzehuels/plannergen/pkg/tex"
	"github.com/matzehuels/plannergen/pkg/tex/table"
)

// Right-hand header links, in display order. The calendar link goes to
// the first monthly page.
var headerLinks = []struct {
	key string
	ref string
}{
	{"sections.calendar", calendar.Month{Month: time.January}.Ref()},
	{"sections.todo", tex.Ref(common.ToDoSection, "index")},
	{"sections.notes", tex.Ref(common.NotesSection, "index")},
}

// pageInfo is what a header needs to know about a page.
type pageInfo struct {
	Title    string
	Ref      string
	Months   []time.Month // highlighted month tabs
	Selected string       // highlighted header link key
}

type describeFunc func(page section.Page) (pageInfo, error)

// header renders the months-on-sides header: an anchor, the month tabs in
// the margin, and a title row with links to the main sections.
type header struct {
	ctx      *common.Context
	describe describeFunc
}

func newHeader(ctx *common.Context, describe describeFunc) header {
	return header{ctx: ctx, describe: describe}
}

func (h header) Generate(page section.Page) (string, error) {
	info, err := h.describe(page)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(h.ctx.Target(info.Ref))
	b.WriteString("%" + tex.NL)
	if h.ctx.LeftHanded() {
		b.WriteString(`\reversemarginpar` + tex.NL)
	}
	b.WriteString(`\marginnote{\rotatebox[origin=tr]{90}{` + h.monthTabs(info.Months) + `}}%` + tex.NL)
	b.WriteString(`{\renewcommand{\arraystretch}{1.8}` + h.titleRow(info) + `}` + tex.NL)
	b.WriteString(`\medskip` + tex.NL)
	return b.String(), nil
}

func (h header) titleRow(info pageInfo) string {
	row := table.NewRow(table.NewCell(`{\Huge `+tex.Escape(info.Title)+`}`), table.Empty())
	for _, link := range headerLinks {
		text := h.ctx.T(link.key)
		if link.key == info.Selected {
			text = `\textbf{` + text + `}`
		}
		row.Push(table.NewCell(h.ctx.Link(link.ref, text)))
	}

	t := table.New(table.WithColumnFormat(`@{}lY|r|r|r@{}`))
	t.AddRow(row)
	return t.String()
}

func (h header) monthTabs(selected []time.Month) string {
	row := table.NewRow()
	for _, m := range h.ctx.Year.Months() {
		text := shortName(h.ctx.MonthName(m))
		if slices.Contains(selected, m.Month) {
			text = `\textbf{` + text + `}`
		}
		row.Push(table.NewCell(h.ctx.Link(m.Ref(), text)))
	}

	t := table.New(
		table.WithWidth(`\textheight`),
		table.WithColumnFormat("|"+strings.Repeat("Y|", row.Len())),
	)
	t.AddRow(row)
	return t.String()
}

// shortName returns the first three letters of a month name.
func shortName(name string) string {
	r := []rune(name)
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

package mos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/layout/dotgrid"
	"github.com/matzehuels/plannergen/pkg/layout/littlecal"
	"github.com/matzehuels/plannergen/pkg/planner/section"
	"github.com/matzehuels/plannergen/pkg/templates/common"
	"github.com/matzehuels/plannergen/pkg/tex"
	"github.com/matzehuels/plannergen/pkg/tex/table"
)

// indexColumns is the number of link columns on index pages.
const indexColumns = 2

// annualColumns is the number of little calendars per row on the annual page.
const annualColumns = 3

type titleBody struct {
	ctx *common.Context
}

func (b titleBody) Generate(page section.Page) (string, error) {
	year, ok := page.(calendar.Year)
	if !ok {
		return "", common.UnexpectedPage("mos title body", page)
	}
	return b.ctx.Target(common.TitleSection) + `\null\vfill` + tex.NL +
		`\begin{center}{\Huge\bfseries ` + strconv.Itoa(year.Number) + `}\end{center}` + tex.NL +
		`\vfill\null`, nil
}

type annualBody struct {
	ctx    *common.Context
	params littlecal.Parameters
}

func (b annualBody) Generate(page section.Page) (string, error) {
	year, ok := page.(calendar.Year)
	if !ok {
		return "", common.UnexpectedPage("mos annual body", page)
	}
	return calendarRows(b.ctx, b.params, year.Months(), annualColumns), nil
}

type quarterlyBody struct {
	ctx    *common.Context
	params littlecal.Parameters
	notes  dotgrid.Grid
}

func (b quarterlyBody) Generate(page section.Page) (string, error) {
	q, ok := page.(calendar.Quarter)
	if !ok {
		return "", common.UnexpectedPage("mos quarterly body", page)
	}
	return calendarRows(b.ctx, b.params, q.Months[:], calendar.MonthsInQuarter) + tex.NL +
		`\vskip5mm` + b.notes.String(), nil
}

// calendarRows lays out one titled little calendar per month, perRow to a
// row. Month titles link to the monthly pages.
func calendarRows(ctx *common.Context, params littlecal.Parameters, months []calendar.Month, perRow int) string {
	var rows []string
	for start := 0; start < len(months); start += perRow {
		end := min(start+perRow, len(months))
		cells := make([]string, 0, end-start)
		for _, m := range months[start:end] {
			cells = append(cells, monthCell(ctx, params, m))
		}
		rows = append(rows, `\noindent`+strings.Join(cells, `\hfill`))
	}
	return strings.Join(rows, tex.NL+`\vskip7mm`+tex.NL)
}

func monthCell(ctx *common.Context, params littlecal.Parameters, m calendar.Month) string {
	return `\begin{minipage}[t]{0.3\linewidth}\centering ` + ctx.Link(m.Ref(), ctx.MonthName(m)) + tex.NL +
		`\medskip` + tex.NL +
		littlecal.New(m, ctx.Translator, params).String() + tex.NL +
		`\end{minipage}`
}

type weeklyBody struct {
	ctx *common.Context
}

func (b weeklyBody) Generate(page section.Page) (string, error) {
	week, ok := page.(calendar.Week)
	if !ok {
		return "", common.UnexpectedPage("mos weekly body", page)
	}

	lines := make([]string, 0, calendar.DaysInWeek)
	for _, d := range week.Days {
		label := ""
		if d != nil {
			month := b.ctx.Year.Months()[d.Time.Month()-1]
			label = b.ctx.Link(d.Ref(), strconv.Itoa(d.Day())+" "+shortName(b.ctx.MonthName(month)))
		}
		lines = append(lines, `\parbox{0pt}{\vskip25mm}`+label+`\hrulefill`)
	}
	return `\noindent` + strings.Join(lines, tex.NL), nil
}

type monthlyBody struct {
	ctx    *common.Context
	params littlecal.Parameters
	notes  dotgrid.Grid
}

func (b monthlyBody) Generate(page section.Page) (string, error) {
	month, ok := page.(calendar.Month)
	if !ok {
		return "", common.UnexpectedPage("mos monthly body", page)
	}

	cal := littlecal.New(month, b.ctx.Translator, b.params,
		littlecal.WithTableOptions(table.WithRowSeparator(`\\ \hline`+tex.NL)))

	return `{\renewcommand{\arraystretch}{2.5}` + cal.String() + `}` + tex.NL +
		`\medskip` + tex.NL +
		b.notes.String(), nil
}

type dailyBody struct {
	ctx        *common.Context
	params     littlecal.Parameters
	priorities int
	hours      [2]int
	notes      dotgrid.Grid
}

func (b dailyBody) Generate(page section.Page) (string, error) {
	day, ok := page.(calendar.Day)
	if !ok {
		return "", common.UnexpectedPage("mos daily body", page)
	}

	left, right := b.schedule(), b.sidebar(day)
	if b.ctx.LeftHanded() {
		left, right = right, left
	}
	return `\noindent\vskip1mm` + left + `\hspace{5mm}` + right, nil
}

func (b dailyBody) schedule() string {
	hours := make([]string, 0, b.hours[1]-b.hours[0]+1)
	for h := b.hours[0]; h <= b.hours[1]; h++ {
		hours = append(hours, fmt.Sprintf(`\parbox{0pt}{\vskip5mm}%02d\hrulefill`, h))
	}
	return `\begin{minipage}[t]{0.32\linewidth}` + tex.NL +
		strings.Join(hours, tex.NL) + tex.NL +
		`\end{minipage}`
}

func (b dailyBody) sidebar(day calendar.Day) string {
	month := b.ctx.Year.Months()[day.Time.Month()-1]
	cal := littlecal.New(month, b.ctx.Translator, b.params)

	priorities := make([]string, b.priorities)
	for i := range priorities {
		priorities[i] = `\parbox{0pt}{\vskip5mm}$\square$\hrulefill`
	}

	return `\begin{minipage}[t]{0.64\linewidth}` + tex.NL +
		cal.String() + tex.NL +
		`\medskip` + tex.NL +
		strings.Join(priorities, tex.NL) + tex.NL +
		`\vskip5mm` + b.notes.String() + tex.NL +
		`\end{minipage}`
}

// indexedBody renders the index page of an indexed section and delegates
// numbered pages to page.
type indexedBody struct {
	ctx  *common.Context
	name string
	page func(common.Numbered) string
}

func (b indexedBody) Generate(page section.Page) (string, error) {
	switch p := page.(type) {
	case common.Index:
		return b.index(p), nil
	case common.Numbered:
		return b.page(p), nil
	}
	return "", common.UnexpectedPage(b.name, page)
}

func (b indexedBody) index(idx common.Index) string {
	t := table.New(table.WithRowSeparator(`\\ \hline` + tex.NL))
	var row *table.Row
	for i := 1; i <= idx.Count; i++ {
		if row == nil {
			row = table.NewRow()
		}
		n := common.Numbered{Section: idx.Section, N: i}
		row.Push(table.NewCell(b.ctx.Link(n.Ref(), strconv.Itoa(i)) + ` \hrulefill`))
		if row.Len() == indexColumns {
			t.AddRow(row)
			row = nil
		}
	}
	if row != nil {
		for row.Len() < indexColumns {
			row.Push(table.Empty())
		}
		t.AddRow(row)
	}
	return t.String()
}

func notesPage(grid dotgrid.Grid) func(common.Numbered) string {
	return func(common.Numbered) string {
		return `\vskip5mm` + grid.String()
	}
}

func todoPage(lines int) func(common.Numbered) string {
	rows := make([]string, lines)
	for i := range rows {
		rows[i] = `\parbox{0pt}{\vskip7mm}$\square$\hrulefill`
	}
	content := `\noindent` + strings.Join(rows, tex.NL)
	return func(common.Numbered) string {
		return content
	}
}

package littlecal

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/plannergen/pkg/calendar"
	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/i18n"
	"github.com/matzehuels/plannergen/pkg/tex"
	"github.com/matzehuels/plannergen/pkg/tex/table"
)

// labels uses three-letter weekday labels so rotation is visible.
var labels = i18n.Map{
	"calendar.one_letter.monday":    "Mon",
	"calendar.one_letter.tuesday":   "Tue",
	"calendar.one_letter.wednesday": "Wed",
	"calendar.one_letter.thursday":  "Thu",
	"calendar.one_letter.friday":    "Fri",
	"calendar.one_letter.saturday":  "Sat",
	"calendar.one_letter.sunday":    "Sun",
	"calendar.one_letter.week":      "Wk",
}

func cellTexts(r *table.Row) []string {
	cells := r.Cells()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

func TestHeadingRotation(t *testing.T) {
	tests := []struct {
		start time.Weekday
		want  string
	}{
		{time.Monday, "Mon Tue Wed Thu Fri Sat Sun"},
		{time.Wednesday, "Wed Thu Fri Sat Sun Mon Tue"},
		{time.Sunday, "Sun Mon Tue Wed Thu Fri Sat"},
	}

	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			month := calendar.NewMonth(2026, time.October, tt.start)
			cal := New(month, labels, Parameters{WithWeekNumbers: false})
			heading := cal.Table().Rows()[0]
			if got := strings.Join(cellTexts(heading), " "); got != tt.want {
				t.Errorf("heading = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeekNumberPlacement(t *testing.T) {
	month := calendar.NewMonth(2026, time.October, time.Monday)

	tests := []struct {
		name      string
		params    Parameters
		wantCells int
		index     int // index of the week-number column, -1 for none
	}{
		{"none", Parameters{WithWeekNumbers: false, WeekNumberPlacement: Left}, 7, -1},
		{"left", Parameters{WithWeekNumbers: true, WeekNumberPlacement: Left}, 8, 0},
		{"right", Parameters{WithWeekNumbers: true, WeekNumberPlacement: Right}, 8, 7},
		{"default placement", Parameters{WithWeekNumbers: true}, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := New(month, labels, tt.params).Table().Rows()
			if len(rows) != 1+len(month.Weeks) {
				t.Fatalf("len(rows) = %d, want %d", len(rows), 1+len(month.Weeks))
			}

			for i, r := range rows {
				if r.Len() != tt.wantCells {
					t.Errorf("row %d has %d cells, want %d", i, r.Len(), tt.wantCells)
				}
			}

			if tt.index < 0 {
				for _, r := range rows {
					for _, c := range r.Cells() {
						if c.String() == "Wk" {
							t.Errorf("unexpected week heading in %v", cellTexts(r))
						}
					}
				}
				return
			}

			if got := rows[0].Cells()[tt.index].String(); got != "Wk" {
				t.Errorf("heading[%d] = %q, want %q", tt.index, got, "Wk")
			}
			for i, w := range month.Weeks {
				got := rows[i+1].Cells()[tt.index].String()
				if want := table.NewCell(w.Number).String(); got != want {
					t.Errorf("week row %d [%d] = %q, want %q", i, tt.index, got, want)
				}
			}
		})
	}
}

func TestEmptySlotsRenderEmptyCells(t *testing.T) {
	// October 2026 starts on a Thursday: three empty leading slots.
	month := calendar.NewMonth(2026, time.October, time.Monday)
	rows := New(month, labels, Parameters{}).Table().Rows()

	first := cellTexts(rows[1])
	want := []string{"", "", "", "1", "2", "3", "4"}
	if strings.Join(first, ",") != strings.Join(want, ",") {
		t.Errorf("first week = %v, want %v", first, want)
	}

	last := cellTexts(rows[len(rows)-1])
	if last[6] != "" || last[5] != "31" {
		t.Errorf("last week = %v, want trailing empty slot after 31", last)
	}
}

func TestRowsHaveEqualWidthForAllMonths(t *testing.T) {
	params := []Parameters{
		{},
		{WithWeekNumbers: true, WeekNumberPlacement: Left},
		{WithWeekNumbers: true, WeekNumberPlacement: Right},
	}

	for _, p := range params {
		for start := time.Sunday; start <= time.Saturday; start++ {
			for _, m := range calendar.NewYear(2026, start).Months() {
				tbl := New(m, labels, p).Table()
				if err := tbl.Validate(); err != nil {
					t.Errorf("%s start=%s params=%+v: %v", m.Name(), start, p, err)
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	month := calendar.NewMonth(2021, time.February, time.Monday)
	cal := New(month, labels, Parameters{WithWeekNumbers: true, WeekNumberPlacement: Right}, WithBoxAdjuster(tex.NoAdjust))

	got := cal.String()
	if !strings.HasPrefix(got, `\begin{tabularx}{\linewidth}{YYYYYYYY}`) {
		t.Errorf("unexpected table header: %q", got)
	}
	if !strings.Contains(got, "Mon & Tue & Wed & Thu & Fri & Sat & Sun & Wk") {
		t.Errorf("heading row missing from %q", got)
	}
	if !strings.Contains(got, "1 & 2 & 3 & 4 & 5 & 6 & 7 & 5") {
		t.Errorf("first week row missing from %q", got)
	}

	adjusted := New(month, labels, Parameters{}).String()
	if !strings.HasPrefix(adjusted, `\adjustbox{`) {
		t.Errorf("default output should go through adjustbox: %q", adjusted)
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{"left", Left, false},
		{"Right", Right, false},
		{"", "", true},
		{"top", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePlacement(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlacement(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidPlacement) {
			t.Errorf("ParsePlacement(%q) wrong code: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParsePlacement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	if !p.WithWeekNumbers || p.WeekNumberPlacement != Left {
		t.Errorf("DefaultParameters() = %+v", p)
	}
}

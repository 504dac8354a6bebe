package plain

import (
	"strings"
	"testing"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/resolver"
	"github.com/matzehuels/plannergen/pkg/tex"
)

const sample = `
[parameters]
template_name = "plain"
year = 2026
weekday_start = "wednesday"

[sections.monthly]
enabled = true

[sections.monthly.little_calendar]
with_week_numbers = false

[sections.notes]
enabled = true
pages = 2
`

func TestPlain(t *testing.T) {
	cfg, err := config.Parse([]byte(sample), config.FormatTOML)
	if err != nil {
		t.Fatalf("config.Parse() error = %v", err)
	}
	reg, err := registry.Install(Family)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	ds, err := resolver.New(reg, nil).Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("Resolve() = %d descriptors, want 2", len(ds))
	}

	monthly, err := ds[0].Section.Generate()
	if err != nil {
		t.Fatalf("monthly Generate() error = %v", err)
	}
	pages := strings.Split(monthly.Content, tex.PageGlue)
	if len(pages) != 12 {
		t.Fatalf("monthly pages = %d, want 12", len(pages))
	}
	if !strings.HasPrefix(pages[0], `\section*{January 2026}`+"\n"+`\begin{tabularx}`) {
		t.Errorf("first page = %q", pages[0])
	}
	if !strings.Contains(pages[0], "W & T & F & S & S & M & T\\\\\n") {
		t.Errorf("headings should start on Wednesday without week numbers: %q", pages[0])
	}
	if strings.Contains(monthly.Content, `\adjustbox`) {
		t.Error("plain calendars are not box adjusted")
	}

	notes, err := ds[1].Section.Generate()
	if err != nil {
		t.Fatalf("notes Generate() error = %v", err)
	}
	want := `\section*{Notes 1}` + "\n" +
		`\leavevmode\multido{\dC=0mm+5mm}{3}{\multido{\dR=0mm+5mm}{2}{\put(\dR,\dC){\circle*{0.1}}}}` +
		tex.PageGlue +
		`\section*{Notes 2}` + "\n" +
		`\leavevmode\multido{\dC=0mm+5mm}{3}{\multido{\dR=0mm+5mm}{2}{\put(\dR,\dC){\circle*{0.1}}}}`
	if notes.Content != want {
		t.Errorf("notes = %q, want %q", notes.Content, want)
	}
}

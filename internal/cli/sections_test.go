package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/plannergen/pkg/config"
	"github.com/matzehuels/plannergen/pkg/planner/registry"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

func TestSectionsCommand(t *testing.T) {
	c, out, _ := newTestCLI()
	if err := execute(t, c, "sections"); err != nil {
		t.Fatalf("sections error = %v", err)
	}

	for _, want := range []string{"mos", "plain", "monthly", "daily", "Header, Body, Section"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSectionsCommandFilter(t *testing.T) {
	c, out, _ := newTestCLI()
	if err := execute(t, c, "sections", "-t", "plain"); err != nil {
		t.Fatalf("sections error = %v", err)
	}
	if strings.Contains(out.String(), "daily") {
		t.Errorf("plain has no daily section:\n%s", out.String())
	}

	if err := execute(t, c, "sections", "-t", "nope"); err == nil {
		t.Error("unknown template should fail")
	}
}

func TestPrintSectionsIncomplete(t *testing.T) {
	reg := registry.New()
	reg.MustRegister("draft", "weekly", registry.Components{
		Header: func(*config.Config, config.SectionConfig) (section.Header, error) { return nil, nil },
	})

	var buf bytes.Buffer
	if err := printSections(&buf, reg, ""); err != nil {
		t.Fatalf("printSections() error = %v", err)
	}
	if !strings.Contains(buf.String(), "draft.weekly is incomplete") {
		t.Errorf("incomplete entry not flagged:\n%s", buf.String())
	}
}

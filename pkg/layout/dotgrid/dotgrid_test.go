package dotgrid

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/plannergen/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
		rows, cols    int
	}{
		{"small", "10mm", "12mm", 4, 2},
		{"defaults", "", "", 3, 2},
		{"exact multiples", "5mm", "5mm", 2, 1},
		{"centimetres", "9.5cm", "19cm", 39, 19},
		{"spaced unit", "10 mm", "12 mm", 4, 2},
		{"fraction", "1mm", "1mm", 2, 1},
		{"just over a step", "10.0000000001mm", "12mm", 4, 3},
		{"points", "72.27pt", "1in", 7, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.width, tt.height)
			if err != nil {
				t.Fatalf("New(%q, %q) error: %v", tt.width, tt.height, err)
			}
			if g.Rows != tt.rows || g.Columns != tt.cols {
				t.Errorf("New(%q, %q) = %d rows x %d cols, want %d x %d",
					tt.width, tt.height, g.Rows, g.Columns, tt.rows, tt.cols)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
		dim           string
	}{
		{"zero width", "0mm", "10mm", "width"},
		{"zero height", "10mm", "0cm", "height"},
		{"negative", "-5mm", "10mm", "width"},
		{"garbage", "wide", "10mm", "width"},
		{"unknown unit", "10mm", "3parsecs", "height"},
		{"huge height", "10mm", "1e20mm", "height"},
		{"huge width", "1e300cm", "10mm", "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDimension) {
				t.Errorf("wrong error code: %v", err)
			}
			var dimErr *errors.InvalidDimensionError
			if !stderrors.As(err, &dimErr) {
				t.Fatalf("error is %T, want *errors.InvalidDimensionError", err)
			}
			if dimErr.Name != tt.dim {
				t.Errorf("Name = %q, want %q", dimErr.Name, tt.dim)
			}
		})
	}
}

func TestString(t *testing.T) {
	out, err := Render("10mm", "12mm")
	if err != nil {
		t.Fatal(err)
	}

	want := `\leavevmode\multido{\dC=0mm+5mm}{4}{\multido{\dR=0mm+5mm}{2}{\put(\dR,\dC){\circle*{0.1}}}}`
	if out != want {
		t.Errorf("String() =\n%s\nwant\n%s", out, want)
	}
	if strings.ContainsAny(out, " \n\t") {
		t.Errorf("output should contain no whitespace: %q", out)
	}
}

func TestRenderError(t *testing.T) {
	if _, err := Render("0mm", "1cm"); err == nil {
		t.Error("Render with zero width should fail")
	}
}

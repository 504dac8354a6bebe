package table

import (
	"testing"
)

func TestNewCell(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "M", "M"},
		{"int", 42, "42"},
		{"nil", nil, ""},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCell(tt.v).String(); got != tt.want {
				t.Errorf("NewCell(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestRowUnshiftPush(t *testing.T) {
	r := NewRow(NewCell("b"))
	r.Unshift(NewCell("a"))
	r.Push(NewCell("c"))

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if got := r.String(); got != "a & b & c" {
		t.Errorf("String() = %q, want %q", got, "a & b & c")
	}
}

func TestNewRowCopiesCells(t *testing.T) {
	cells := []Cell{NewCell("x")}
	r := NewRow(cells...)
	r.Unshift(NewCell("y"))
	if cells[0].String() != "x" {
		t.Error("NewRow must not alias the caller's slice")
	}
}

func TestTableString(t *testing.T) {
	tbl := New()
	tbl.AddRow(NewRow(NewCell("M"), NewCell("T")))
	tbl.AddRows(NewRow(NewCell(1), NewCell(2)))

	want := "\\begin{tabularx}{\\linewidth}{YY}\nM & T\\\\\n1 & 2\n\\end{tabularx}"
	if got := tbl.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableOptions(t *testing.T) {
	tbl := New(WithWidth("5cm"), WithColumnFormat("l|r"), WithRowSeparator(`\\ \hline`+"\n"))
	tbl.AddRows(NewRow(NewCell("a"), NewCell("b")), NewRow(NewCell("c"), NewCell("d")))

	want := "\\begin{tabularx}{5cm}{l|r}\na & b\\\\ \\hline\nc & d\n\\end{tabularx}"
	if got := tbl.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableValidate(t *testing.T) {
	tbl := New()
	if err := tbl.Validate(); err != nil {
		t.Errorf("empty table should validate: %v", err)
	}

	tbl.AddRows(NewRow(NewCell(1), NewCell(2)), NewRow(NewCell(3), NewCell(4)))
	if err := tbl.Validate(); err != nil {
		t.Errorf("even table should validate: %v", err)
	}

	tbl.AddRow(NewRow(NewCell(5)))
	if err := tbl.Validate(); err == nil {
		t.Error("ragged table should fail validation")
	}
}

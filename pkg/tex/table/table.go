// Package table is a small builder for tabular LaTeX output.
//
// A [Table] is an ordered list of [Row]s; a Row is an ordered list of
// [Cell]s that can grow at either end, which is how optional columns such as
// week numbers are attached after the body of a row has been built.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/plannergen/pkg/errors"
)

// Cell wraps a single renderable value.
type Cell struct {
	text string
}

// NewCell creates a cell from a string, an integer, or any fmt.Stringer.
// Other values are formatted with fmt.Sprint.
func NewCell(v any) Cell {
	switch t := v.(type) {
	case string:
		return Cell{text: t}
	case int:
		return Cell{text: strconv.Itoa(t)}
	case fmt.Stringer:
		return Cell{text: t.String()}
	case nil:
		return Cell{}
	default:
		return Cell{text: fmt.Sprint(t)}
	}
}

// Empty returns a cell with no content.
func Empty() Cell {
	return Cell{}
}

// String returns the cell content.
func (c Cell) String() string {
	return c.text
}

// Row is an ordered, mutable sequence of cells.
type Row struct {
	cells []Cell
}

// NewRow creates a row from cells.
func NewRow(cells ...Cell) *Row {
	return &Row{cells: append([]Cell(nil), cells...)}
}

// Unshift inserts c at the front of the row.
func (r *Row) Unshift(c Cell) {
	r.cells = append([]Cell{c}, r.cells...)
}

// Push appends c at the back of the row.
func (r *Row) Push(c Cell) {
	r.cells = append(r.cells, c)
}

// Len returns the number of cells.
func (r *Row) Len() int {
	return len(r.cells)
}

// Cells returns a copy of the row's cells.
func (r *Row) Cells() []Cell {
	return append([]Cell(nil), r.cells...)
}

// String renders the row with cells joined by " & ".
func (r *Row) String() string {
	parts := make([]string, len(r.cells))
	for i, c := range r.cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " & ")
}

// Option configures a Table.
type Option func(*Table)

// WithWidth sets the total table width (default \linewidth).
func WithWidth(width string) Option {
	return func(t *Table) { t.width = width }
}

// WithColumnFormat sets an explicit tabularx column spec. Without it every
// column is a centered X column.
func WithColumnFormat(format string) Option {
	return func(t *Table) { t.format = format }
}

// WithRowSeparator overrides the separator placed between rows.
func WithRowSeparator(sep string) Option {
	return func(t *Table) { t.rowSep = sep }
}

// Table is an ordered sequence of rows plus layout parameters.
type Table struct {
	width  string
	format string
	rowSep string
	rows   []*Row
}

// New creates an empty table.
func New(opts ...Option) *Table {
	t := &Table{
		width:  `\linewidth`,
		rowSep: `\\` + "\n",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddRow appends a row.
func (t *Table) AddRow(r *Row) {
	t.rows = append(t.rows, r)
}

// AddRows appends rows in order.
func (t *Table) AddRows(rows ...*Row) {
	t.rows = append(t.rows, rows...)
}

// Rows returns the table's rows.
func (t *Table) Rows() []*Row {
	return t.rows
}

// Columns returns the cell count of the first row, or 0 for an empty table.
func (t *Table) Columns() int {
	if len(t.rows) == 0 {
		return 0
	}
	return t.rows[0].Len()
}

// Validate reports an error if the rows do not all have the same number of
// cells.
func (t *Table) Validate() error {
	want := t.Columns()
	for i, r := range t.rows {
		if r.Len() != want {
			return errors.New(errors.ErrCodeInternal, "row %d has %d cells, want %d", i, r.Len(), want)
		}
	}
	return nil
}

// String renders the table as a tabularx environment.
func (t *Table) String() string {
	rows := make([]string, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.String()
	}

	return `\begin{tabularx}{` + t.width + `}{` + t.columnFormat() + `}` + "\n" +
		strings.Join(rows, t.rowSep) + "\n" +
		`\end{tabularx}`
}

func (t *Table) columnFormat() string {
	if t.format != "" {
		return t.format
	}
	return strings.Repeat("Y", t.Columns())
}

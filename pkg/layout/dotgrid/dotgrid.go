// Package dotgrid renders a dotted writing grid for note pages.
//
// Dots are spaced 5mm apart. The number of dot rows includes both the top
// and the bottom boundary; the column count does not add one because the
// rightmost dot already sits on the right boundary.
package dotgrid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/measure"
)

// DefaultSize is used for a width or height left empty.
const DefaultSize = "1cm"

// Spacing is the distance between neighbouring dots.
var Spacing = measure.MM(5)

const markup = `
\leavevmode\multido{\dC=0mm+%[3]s}{%[1]d}{
  \multido{\dR=0mm+%[3]s}{%[2]d}{
    \put(\dR,\dC){\circle*{0.1}}
  }
}
`

// Grid is a dot grid of a fixed size.
type Grid struct {
	Rows    int
	Columns int
}

// New computes the grid for the given width and height, e.g. "10mm", "12cm".
// Empty values default to DefaultSize. Zero, negative, unparsable, or
// absurdly large values return an *errors.InvalidDimensionError.
func New(width, height string) (Grid, error) {
	w, err := dimension("width", width)
	if err != nil {
		return Grid{}, err
	}
	h, err := dimension("height", height)
	if err != nil {
		return Grid{}, err
	}

	rows, err := count("height", height, h)
	if err != nil {
		return Grid{}, err
	}
	cols, err := count("width", width, w)
	if err != nil {
		return Grid{}, err
	}

	return Grid{Rows: rows + 1, Columns: cols}, nil
}

// count returns how many Spacing steps cover l.
func count(name, raw string, l measure.Length) (int, error) {
	ratio, err := l.Div(Spacing)
	if err != nil {
		return 0, err
	}
	n, err := measure.Ceil(ratio)
	if err != nil {
		return 0, &errors.InvalidDimensionError{Name: name, Value: raw, Cause: err}
	}
	return n, nil
}

func dimension(name, raw string) (measure.Length, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultSize
	}
	l, err := measure.Parse(raw)
	if err != nil {
		return measure.Length{}, &errors.InvalidDimensionError{Name: name, Value: raw, Cause: err}
	}
	if !l.Positive() {
		return measure.Length{}, &errors.InvalidDimensionError{Name: name, Value: raw}
	}
	return l, nil
}

// String renders the grid with all formatting whitespace removed.
func (g Grid) String() string {
	return collapse(fmt.Sprintf(markup, g.Rows, g.Columns, Spacing))
}

// Render is a shorthand for New followed by String.
func Render(width, height string) (string, error) {
	g, err := New(width, height)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), "")
}

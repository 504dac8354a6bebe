// Package measure parses TeX lengths and does the small amount of arithmetic
// layouts need on them.
//
// A [Length] keeps the quantity and unit it was written with, so it renders
// back the same way, while all arithmetic happens in millimetres:
//
//	w, _ := measure.Parse("10mm")
//	step, _ := measure.Parse("5 mm")
//	ratio, _ := w.Div(step) // 2
//	cols, _ := measure.Ceil(ratio)
package measure

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/plannergen/pkg/errors"
)

// Unit is a TeX length unit.
type Unit string

// Supported units.
const (
	Millimetre Unit = "mm"
	Centimetre Unit = "cm"
	Inch       Unit = "in"
	Point      Unit = "pt" // TeX point, 1/72.27 in
	BigPoint   Unit = "bp" // PostScript point, 1/72 in
)

// millimetres per unit
var scale = map[Unit]float64{
	Millimetre: 1,
	Centimetre: 10,
	Inch:       25.4,
	Point:      25.4 / 72.27,
	BigPoint:   25.4 / 72,
}

// Length is a quantity with a unit.
type Length struct {
	Quantity float64
	Unit     Unit
}

// MM returns a length of q millimetres.
func MM(q float64) Length {
	return Length{Quantity: q, Unit: Millimetre}
}

// Parse reads a length such as "10mm", "5 mm" or "1.5cm". Whitespace between
// the quantity and the unit is allowed.
func Parse(s string) (Length, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Length{}, errors.New(errors.ErrCodeInvalidDimension, "empty length")
	}

	i := len(raw)
	for i > 0 && isUnitChar(raw[i-1]) {
		i--
	}

	unit := Unit(strings.ToLower(raw[i:]))
	if _, ok := scale[unit]; !ok {
		return Length{}, errors.New(errors.ErrCodeInvalidDimension, "unknown unit in %q", s)
	}

	q, err := strconv.ParseFloat(strings.TrimSpace(raw[:i]), 64)
	if err != nil {
		return Length{}, errors.Wrap(errors.ErrCodeInvalidDimension, err, "invalid quantity in %q", s)
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return Length{}, errors.New(errors.ErrCodeInvalidDimension, "quantity out of range in %q", s)
	}

	return Length{Quantity: q, Unit: unit}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Length {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func isUnitChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Millimetres returns the length converted to millimetres.
func (l Length) Millimetres() float64 {
	return l.Quantity * scale[l.Unit]
}

// Positive reports whether the length is greater than zero.
func (l Length) Positive() bool {
	return l.Millimetres() > 0
}

// Div returns the dimensionless ratio l / other.
func (l Length) Div(other Length) (float64, error) {
	d := other.Millimetres()
	if d == 0 {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "division by zero length %s", other)
	}
	return l.Millimetres() / d, nil
}

// String renders the length in its original unit, e.g. "5mm".
func (l Length) String() string {
	return strconv.FormatFloat(l.Quantity, 'f', -1, 64) + string(l.Unit)
}

// MaxCount is the largest count Ceil returns.
const MaxCount = 1 << 30

// Ceil rounds a non-negative ratio up to an integer count. A ratio within a
// relative 1e-12 of an integer is that integer, which absorbs unit
// conversion noise but nothing a user could type. Ratios that are negative,
// not finite or above MaxCount are an error.
func Ceil(ratio float64) (int, error) {
	if math.IsNaN(ratio) || ratio < 0 || ratio > MaxCount {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "ratio %g out of range [0, %d]", ratio, MaxCount)
	}
	if r := math.Round(ratio); math.Abs(ratio-r) <= 1e-12*math.Max(1, r) {
		return int(r), nil
	}
	return int(math.Ceil(ratio)), nil
}

// Package layout groups the reusable layout engines that section bodies and
// headers call into.
//
// Subpackages:
//   - littlecal: a month as a table of weeks and days, with optional week numbers
//   - dotgrid: a dotted writing grid sized from a width and height
package layout

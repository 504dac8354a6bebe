// Package tex holds the small LaTeX vocabulary shared by layouts and
// template families: line breaks, the page separator, and the adjustbox
// finishing step for tables.
package tex

import (
	"fmt"
	"strings"
)

const (
	// NL is a newline.
	NL = "\n"

	// NLNL is a blank line (paragraph break).
	NLNL = "\n\n"

	// PageBreak is the page-break directive.
	PageBreak = `\pagebreak{}`
)

// PageGlue separates pages inside one generated document. Downstream
// tooling splits on this exact sequence, so it must not change.
const PageGlue = NL + PageBreak + NLNL

// BoxAdjuster finishes a rendered block before it is placed on a page.
type BoxAdjuster func(content string) string

// AdjustBox scales content down to the line width if it would overflow.
func AdjustBox(content string) string {
	return `\adjustbox{max width=\linewidth}{` + NL + content + NL + `}`
}

// NoAdjust returns content unchanged.
func NoAdjust(content string) string {
	return content
}

// Command renders \name{arg1}{arg2}...
func Command(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(`\` + name)
	for _, a := range args {
		b.WriteString("{" + a + "}")
	}
	return b.String()
}

// Hyperlink renders a \hyperlink to ref with the given text.
func Hyperlink(ref, text string) string {
	return Command("hyperlink", ref, text)
}

// Hypertarget renders a \hypertarget anchor.
func Hypertarget(ref, text string) string {
	return Command("hypertarget", ref, text)
}

// escaper escapes characters with special meaning in LaTeX text.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape makes s safe to place in running text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Ref builds a hyperref anchor name from parts, e.g. Ref("month", 3) = "month-3".
func Ref(parts ...any) string {
	ss := make([]string, len(parts))
	for i, p := range parts {
		ss[i] = fmt.Sprint(p)
	}
	return strings.Join(ss, "-")
}

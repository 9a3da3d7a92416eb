package report

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// lineWriter accumulates the first write error so renderers stay linear.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lineWriter) println(s string) {
	lw.printf("%s\n", s)
}

func (lw *lineWriter) blank() {
	lw.printf("\n")
}

func (lw *lineWriter) banner(title string) {
	lw.println(headerStyle.Render("=== " + title + " ==="))
}

// heading prints "N. Title:" underlined with dashes.
func (lw *lineWriter) heading(n int, title string) {
	line := fmt.Sprintf("%d. %s:", n, title)
	lw.println(sectionStyle.Render(line))
	lw.println(strings.Repeat("-", len(line)))
}

// percent rounds half away from zero.
func percent(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v)))
}

package cmd

import (
	"io"

	"github.com/CosmoTheDev/cmsprobe/internal/report"
)

// render writes v as text via text, or through the structured encoder.
func render(w io.Writer, output string, v any, text func(io.Writer) error) error {
	format, err := report.ParseFormat(output)
	if err != nil {
		return err
	}
	if format == report.FormatText {
		return text(w)
	}
	return report.Encode(w, format, v)
}

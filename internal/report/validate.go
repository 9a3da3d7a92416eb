package report

import (
	"fmt"
	"io"

	"github.com/CosmoTheDev/cmsprobe/internal/validate"
	"github.com/CosmoTheDev/cmsprobe/models"
)

var itemVerbs = map[validate.Kind]string{
	validate.KindSyntax:     "Checking",
	validate.KindConfig:     "Validating",
	validate.KindStructure:  "Checking directory",
	validate.KindPermission: "Checking accessibility",
}

var summaryLabels = []struct {
	kind  validate.Kind
	label string
}{
	{validate.KindSyntax, "Syntax Errors"},
	{validate.KindConfig, "Configuration Errors"},
	{validate.KindStructure, "Structure Errors"},
	{validate.KindPermission, "Permission Errors"},
}

// Validation writes the project validator report.
func Validation(w io.Writer, r validate.Result) error {
	lw := &lineWriter{w: w}

	lw.banner("Project Test Runner")
	lw.println("Starting test execution...")
	lw.blank()

	for i, sec := range r.Sections {
		lw.heading(i+1, sec.Title)
		for _, it := range sec.Items {
			subject := it.Path
			if it.Format != "" {
				subject = fmt.Sprintf("%s (%s)", it.Path, it.Format)
			}
			result := it.Label
			if !it.OK && it.Detail != "" && sec.Kind == validate.KindConfig {
				result += " - " + it.Detail
			}
			lw.printf("%s: %s ... %s\n", itemVerbs[sec.Kind], subject, mark(passFail(it.OK), result))
			if !it.OK && it.Detail != "" && sec.Kind == validate.KindSyntax {
				lw.println(dimStyle.Render("  Error: " + it.Detail))
			}
		}
		lw.blank()
	}

	lw.banner("TEST SUMMARY")
	for _, s := range summaryLabels {
		lw.printf("%s: %d\n", s.label, r.Errors(s.kind))
	}
	lw.blank()

	if total := r.Total(); total == 0 {
		lw.println(mark(models.StatusPass, "ALL TESTS PASSED! The project structure and basic syntax are valid."))
	} else {
		lw.println(mark(models.StatusFail, fmt.Sprintf("%d ERRORS FOUND. Please review the issues above.", total)))
	}
	return lw.err
}

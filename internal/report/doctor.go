package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/CosmoTheDev/cmsprobe/internal/compat"
	"github.com/CosmoTheDev/cmsprobe/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Doctor writes the human-readable compatibility report.
func Doctor(w io.Writer, a *compat.Assessment) error {
	lw := &lineWriter{w: w}
	f := a.Facts

	lw.banner("Ubuntu 24.04 Compatibility Test")
	lw.println("Testing environment for Drupal deployment...")
	lw.blank()

	lw.heading(1, "Operating System Check")
	if f.OSDetected {
		lw.printf("OS: %s %s\n", f.OS.Name, f.OS.VersionID)
	}
	checkLines(lw, a.ChecksFor(models.CategoryOS))
	lw.blank()

	lw.heading(2, "PHP Environment Check")
	if f.RuntimeVersion != "" {
		lw.printf("PHP Version: %s\n", f.RuntimeVersion)
	}
	checkLines(lw, a.ChecksFor(models.CategoryRuntimeVersion))
	lw.blank()
	lw.println("PHP Extensions:")
	for _, ext := range f.Extensions {
		if ext.Present {
			lw.println(mark(models.StatusPass, fmt.Sprintf("%s (%s)", ext.Name, ext.Description)))
		} else {
			lw.println(mark(models.StatusFail, fmt.Sprintf("%s (%s) - MISSING", ext.Name, ext.Description)))
		}
	}
	lw.blank()

	lw.heading(3, "Web Server Check")
	lw.printf("Environment: %s\n", f.ServerSoftware)
	checkLines(lw, a.ChecksFor(models.CategoryWebServer))
	lw.blank()

	lw.heading(4, "Database Support Check")
	for _, c := range a.ChecksFor(models.CategoryDatabase) {
		if c.Passed() {
			lw.println(mark(models.StatusPass, c.Detail))
		}
	}
	if len(f.Drivers) == 0 {
		lw.println(mark(models.StatusFail, "No database drivers found"))
	} else {
		lw.printf("Available drivers: %s\n", strings.Join(f.Drivers, ", "))
	}
	if len(a.Connectivity) > 0 {
		lw.println("Live connectivity:")
		for _, c := range a.Connectivity {
			if c.OK {
				lw.println("  " + mark(models.StatusPass, fmt.Sprintf("%s %s (server %s)", c.Driver, c.Target, c.Version)))
			} else {
				lw.println("  " + mark(models.StatusFail, fmt.Sprintf("%s %s: %s", c.Driver, c.Target, c.Error)))
			}
		}
	}
	lw.blank()

	lw.heading(5, "File System Check")
	if f.TempDir != "" {
		lw.println(dimStyle.Render("Directory: " + f.TempDir))
	}
	for _, c := range a.ChecksFor(models.CategoryFilesystem) {
		line := fmt.Sprintf("%s: %s", c.Name, c.Detail)
		if c.Error != "" {
			line += " (" + c.Error + ")"
		}
		lw.println(mark(c.Status, line))
	}
	lw.blank()

	lw.heading(6, "Performance Check")
	lw.printf("Memory Limit: %s\n", f.MemoryLimit)
	lw.printf("Max Execution Time: %ss\n", f.MaxExecutionTime)
	checkLines(lw, a.ChecksFor(models.CategoryPerformance))
	lw.blank()

	s := a.Summary
	lw.banner("COMPATIBILITY SUMMARY")
	for _, c := range s.Categories {
		lw.printf("%s: %s\n", c.Name, percent(c.Score))
	}
	lw.blank()
	lw.println(sectionStyle.Render("OVERALL COMPATIBILITY: " + percent(s.Overall)))
	lw.println(verdictStyle(s.Verdict).Render(fmt.Sprintf("%s - %s", s.Verdict, s.Verdict.Message())))
	lw.blank()

	lw.banner("RECOMMENDATIONS")
	if len(a.Hints) == 0 {
		lw.println(successStyle.Render("• No changes needed"))
	}
	for _, h := range a.Hints {
		lw.println("• " + h.Message)
		if h.Command != "" {
			lw.println("  " + dimStyle.Render(h.Command))
		}
	}
	lw.blank()

	if !a.CompletedAt.IsZero() {
		lw.printf("Test completed at: %s\n", a.CompletedAt.Format(timestampLayout))
	}
	return lw.err
}

func checkLines(lw *lineWriter, checks []models.Check) {
	for _, c := range checks {
		lw.println(mark(c.Status, c.Detail))
	}
}

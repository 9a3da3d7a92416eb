package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/CosmoTheDev/cmsprobe/internal/compat"
	"github.com/CosmoTheDev/cmsprobe/models"
)

var iniLabels = map[string]string{
	"memory_limit":        "Memory Limit",
	"max_execution_time":  "Max Execution Time",
	"upload_max_filesize": "Upload Max Filesize",
	"post_max_size":       "Post Max Size",
}

// Setup writes the runtime readiness report.
func Setup(w io.Writer, r *compat.Readiness) error {
	lw := &lineWriter{w: w}

	lw.banner("PHP Environment Test")
	lw.printf("PHP Version: %s\n", orDash(r.RuntimeVersion))
	lw.printf("PHP SAPI: %s\n", orDash(r.SAPI))
	lw.blank()

	lw.banner("Extension Check")
	for _, ext := range r.Extensions {
		if ext.Present {
			lw.println(mark(models.StatusPass, fmt.Sprintf("%s (%s)", ext.Name, ext.Description)))
		} else {
			lw.println(mark(models.StatusFail, fmt.Sprintf("%s (%s) - MISSING", ext.Name, ext.Description)))
		}
	}
	lw.blank()

	lw.banner("Version Compatibility")
	if r.VersionOK {
		lw.println(mark(models.StatusPass, "PHP version is compatible with Drupal 11.1.x"))
	} else {
		lw.println(mark(models.StatusFail, fmt.Sprintf("PHP version is too old. Drupal 11.1.x requires PHP %s+", r.RequiredVersion)))
		lw.printf("  Current: %s\n", orDash(r.RuntimeVersion))
		lw.printf("  Required: %s+\n", r.RequiredVersion)
	}
	lw.blank()

	lw.banner("Composer Check")
	if r.Composer.Available {
		lw.println(mark(models.StatusPass, "Composer is available"))
		for _, line := range strings.Split(r.Composer.Output, "\n") {
			lw.println("  " + line)
		}
	} else {
		lw.println(mark(models.StatusFail, "Composer not found or not working"))
	}
	lw.blank()

	lw.banner("PHP Configuration")
	for _, iv := range r.Ini {
		label := iniLabels[iv.Key]
		if label == "" {
			label = iv.Key
		}
		suffix := ""
		if iv.Key == "max_execution_time" {
			suffix = "s"
		}
		lw.printf("%s: %s%s\n", label, iv.Value, suffix)
	}
	lw.blank()

	lw.banner("Summary")
	if r.Ready() {
		lw.println(mark(models.StatusPass, "Environment is ready for Drupal 11.1.x testing!"))
		lw.blank()
		lw.println("Next steps:")
		lw.println("1. composer install")
		lw.println("2. vendor/bin/phpunit")
		return lw.err
	}

	lw.println(mark(models.StatusFail, "Environment needs fixes:"))
	if len(r.Missing) > 0 {
		lw.blank()
		lw.println("Missing extensions (enable in php.ini):")
		for _, ext := range r.Missing {
			lw.printf("  - extension=%s\n", ext)
		}
	}
	if !r.VersionOK {
		lw.blank()
		lw.println("PHP upgrade needed:")
		lw.printf("  - Install PHP %s+ (e.g. sudo apt install php8.3-cli)\n", r.RequiredVersion)
	}
	lw.blank()
	lw.println("Alternative: Try with platform overrides:")
	lw.println("  composer install --ignore-platform-reqs")
	return lw.err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

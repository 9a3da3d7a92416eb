package compat

import (
	"fmt"
	"strings"

	"github.com/CosmoTheDev/cmsprobe/internal/phpini"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
	"github.com/CosmoTheDev/cmsprobe/internal/version"
	"github.com/CosmoTheDev/cmsprobe/models"
)

// RuntimeScore applies the PHP version thresholds.
func RuntimeScore(v string) float64 {
	switch {
	case version.AtLeast(v, "8.3.0"):
		return 100
	case version.AtLeast(v, "8.2.0"):
		return 80
	case version.AtLeast(v, "8.1.0"):
		return 60
	default:
		return 0
	}
}

// RuntimeCheck scores the runtime version. err is the probe failure, if any.
func RuntimeCheck(v string, err error) models.Check {
	c := models.Check{Name: "PHP version", Category: models.CategoryRuntimeVersion, Weight: 100}
	if err != nil {
		c.Status = models.StatusFail
		c.Error = err.Error()
		c.Detail = "Unable to determine PHP version"
		return c
	}
	if _, perr := version.Parse(v); perr != nil {
		c.Status = models.StatusFail
		c.Error = perr.Error()
		c.Detail = fmt.Sprintf("Unrecognised PHP version %q", v)
		return c
	}
	c.Score = RuntimeScore(v)
	switch c.Score {
	case 100:
		c.Detail = "PHP 8.3+ detected - Perfect for Drupal 11.1.x"
	case 80:
		c.Detail = "PHP 8.2 detected - Compatible with workarounds"
	case 60:
		c.Detail = "PHP 8.1 detected - Minimum requirement, upgrade recommended"
	default:
		c.Detail = "PHP version too old for Drupal 11.1.x"
	}
	c.Status = models.StatusForScore(c.Score)
	return c
}

// OSScore applies the OS release thresholds to a parsed descriptor.
func OSScore(rel probe.OSRelease) float64 {
	switch {
	case rel.Name == "Ubuntu" && version.AtLeast(rel.VersionID, "24.04"):
		return 100
	case rel.Name == "Ubuntu" && version.AtLeast(rel.VersionID, "22.04"):
		return 80
	case strings.Contains(rel.Name, "Ubuntu"):
		return 60
	default:
		return 40
	}
}

// OSCheck scores the operating system. An unreadable descriptor scores 0.
func OSCheck(rel probe.OSRelease, err error) models.Check {
	c := models.Check{Name: "Operating system", Category: models.CategoryOS, Weight: 100}
	if err != nil {
		c.Status = models.StatusFail
		c.Error = err.Error()
		c.Detail = "Cannot determine OS version"
		return c
	}
	c.Score = OSScore(rel)
	switch c.Score {
	case 100:
		c.Detail = "Ubuntu 24.04+ detected - EXCELLENT compatibility"
	case 80:
		c.Detail = "Ubuntu 22.04+ detected - Good compatibility (consider upgrading)"
	case 60:
		c.Detail = "Older Ubuntu detected - May need manual PHP 8.3 installation"
	default:
		c.Detail = "Non-Ubuntu system detected - Compatibility may vary"
	}
	c.Status = models.StatusForScore(c.Score)
	return c
}

// ExtensionCheck wraps an extension-set score as a check.
func ExtensionCheck(score float64, missing []string, err error) models.Check {
	c := models.Check{
		Name:     "PHP extensions",
		Category: models.CategoryExtensions,
		Weight:   100,
		Score:    score,
		Status:   models.StatusForScore(score),
	}
	if err != nil {
		c.Error = err.Error()
	}
	if len(missing) > 0 {
		c.Detail = "Missing: " + strings.Join(missing, ", ")
	} else {
		c.Detail = "All required extensions loaded"
	}
	return c
}

// CLIServer is the web-server context reported when not running under one.
const CLIServer = "CLI"

// ServerScore rates the web-server context string.
func ServerScore(software string) float64 {
	switch {
	case strings.Contains(software, "Apache"):
		return 100
	case strings.Contains(software, "nginx"):
		return 90
	case software == "" || software == CLIServer:
		return 50
	default:
		return 30
	}
}

// ServerCheck scores the web-server context.
func ServerCheck(software string) models.Check {
	c := models.Check{Name: "Web server", Category: models.CategoryWebServer, Weight: 100}
	c.Score = ServerScore(software)
	switch c.Score {
	case 100:
		c.Status, c.Detail = models.StatusPass, "Apache detected - Excellent for Drupal"
	case 90:
		c.Status, c.Detail = models.StatusPass, "Nginx detected - Good for Drupal"
	case 50:
		c.Status, c.Detail = models.StatusInfo, "Running in CLI mode - Web server check skipped"
	default:
		c.Status, c.Detail = models.StatusWarn, "Unknown web server - May need configuration"
	}
	return c
}

// databaseDriver is one entry of the fixed driver point budget.
type databaseDriver struct {
	label     string
	extension string
	points    float64
}

// databaseDrivers sums to 100, so the driver category never exceeds 100.
var databaseDrivers = []databaseDriver{
	{"MySQL", "pdo_mysql", 50},
	{"SQLite", "pdo_sqlite", 30},
	{"PostgreSQL", "pdo_pgsql", 20},
}

// DatabaseChecks produces one check per known PDO driver.
func DatabaseChecks(exts ExtensionSet) []models.Check {
	checks := make([]models.Check, 0, len(databaseDrivers))
	for _, d := range databaseDrivers {
		c := models.Check{Name: d.label, Category: models.CategoryDatabase, Weight: d.points}
		if exts.Has(d.extension) {
			c.Score = 100
			c.Status = models.StatusPass
			c.Detail = d.label + " support available"
		} else {
			c.Status = models.StatusFail
			c.Detail = d.extension + " not loaded"
		}
		checks = append(checks, c)
	}
	return checks
}

// PerformanceChecks tests memory_limit and max_execution_time against the
// minimums. A memory_limit of -1 and an execution time of 0 are unlimited.
// memErr and exeErr are the read failures of each directive; a failed read
// scores only its own check 0.
func PerformanceChecks(memoryLimit string, memErr error, maxExecution string, exeErr error, minMemory string, minExecution int) []models.Check {
	return []models.Check{
		memoryCheck(memoryLimit, memErr, minMemory),
		executionCheck(maxExecution, exeErr, minExecution),
	}
}

func memoryCheck(memoryLimit string, err error, minMemory string) models.Check {
	c := models.Check{Name: "Memory limit", Category: models.CategoryPerformance, Weight: 50}
	if err != nil {
		c.Status = models.StatusFail
		c.Error = err.Error()
		c.Detail = "Unable to read memory_limit"
		return c
	}
	if phpini.Unlimited(memoryLimit) || phpini.ParseBytes(memoryLimit) >= phpini.ParseBytes(minMemory) {
		c.Score, c.Status = 100, models.StatusPass
		c.Detail = fmt.Sprintf("Memory limit %s adequate for Drupal", memoryLimit)
	} else {
		c.Status = models.StatusWarn
		c.Detail = fmt.Sprintf("Memory limit %s may be too low for Drupal (want %s)", memoryLimit, minMemory)
	}
	return c
}

func executionCheck(maxExecution string, err error, minExecution int) models.Check {
	c := models.Check{Name: "Execution time", Category: models.CategoryPerformance, Weight: 50}
	if err != nil {
		c.Status = models.StatusFail
		c.Error = err.Error()
		c.Detail = "Unable to read max_execution_time"
		return c
	}
	secs := phpini.ParseInt(maxExecution)
	unlimited := strings.TrimSpace(maxExecution) != "" && secs == 0
	if unlimited || secs >= int64(minExecution) {
		c.Score, c.Status = 100, models.StatusPass
		c.Detail = fmt.Sprintf("Execution time %ss adequate", maxExecution)
	} else {
		c.Status = models.StatusWarn
		c.Detail = fmt.Sprintf("Execution time %ss may be too short (want %ds)", maxExecution, minExecution)
	}
	return c
}

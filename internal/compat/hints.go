package compat

import (
	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/models"
)

// Hints derives remediation lines from the summary. Order is fixed: OS,
// runtime, one line per missing extension, file system, performance.
func Hints(s Summary, missing []string, th config.ThresholdsConfig) []models.Hint {
	var hints []models.Hint
	if s.Term(models.CategoryOS) < th.OS {
		hints = append(hints, models.Hint{
			Category: models.CategoryOS,
			Message:  "Consider upgrading to Ubuntu 24.04 LTS for best compatibility",
		})
	}
	if s.Term(models.CategoryRuntimeVersion) < th.Runtime {
		hints = append(hints, models.Hint{
			Category: models.CategoryRuntimeVersion,
			Message:  "Upgrade to PHP 8.3+ for optimal Drupal 11.1.x support",
		})
	}
	for _, ext := range missing {
		hints = append(hints, models.Hint{
			Category: models.CategoryExtensions,
			Message:  "Install missing PHP extension " + ext,
			Command:  "sudo apt install php8.3-" + ext,
		})
	}
	if s.Term(models.CategoryFilesystem) < th.Filesystem {
		hints = append(hints, models.Hint{
			Category: models.CategoryFilesystem,
			Message:  "Check file system permissions and disk space",
		})
	}
	if s.Term(models.CategoryPerformance) < th.Performance {
		hints = append(hints, models.Hint{
			Category: models.CategoryPerformance,
			Message:  "Optimize PHP configuration for better performance",
		})
	}
	return hints
}

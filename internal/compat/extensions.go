// Package compat scores how well a host suits a Drupal deployment. Checks
// produce sub-scores, a per-category strategy table combines them, and the
// result maps to a verdict plus remediation hints.
package compat

import (
	"strings"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
)

// ExtensionSet is the set of loaded runtime extensions, keyed lower-case.
type ExtensionSet map[string]bool

// NewExtensionSet builds a set from extension names.
func NewExtensionSet(names []string) ExtensionSet {
	set := make(ExtensionSet, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return set
}

// Has reports whether name is loaded. Lookups are case-insensitive.
func (s ExtensionSet) Has(name string) bool {
	return s[strings.ToLower(name)]
}

// ExtensionStatus is one required extension and whether it is present.
type ExtensionStatus struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Present     bool   `json:"present"     yaml:"present"`
}

// EvaluateSet scores a required set against a presence query. The score is
// 100*present/total computed as one ratio; missing names keep input order.
// An empty required set scores 100.
func EvaluateSet(required []config.Requirement, has func(string) bool) (float64, []string) {
	score, missing, _ := evaluateSet(required, has)
	return score, missing
}

func evaluateSet(required []config.Requirement, has func(string) bool) (float64, []string, []ExtensionStatus) {
	if len(required) == 0 {
		return 100, nil, nil
	}
	present := 0
	var missing []string
	statuses := make([]ExtensionStatus, 0, len(required))
	for _, req := range required {
		ok := has(req.Name)
		if ok {
			present++
		} else {
			missing = append(missing, req.Name)
		}
		statuses = append(statuses, ExtensionStatus{Name: req.Name, Description: req.Description, Present: ok})
	}
	return 100 * float64(present) / float64(len(required)), missing, statuses
}

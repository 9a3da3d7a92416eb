package compat

import "github.com/CosmoTheDev/cmsprobe/models"

// aggregateFunc folds a category's checks into one score in [0,100].
type aggregateFunc func(checks []models.Check) float64

// meanScore averages check scores. Single-check categories reduce to the
// check's own score.
func meanScore(checks []models.Check) float64 {
	if len(checks) == 0 {
		return 0
	}
	var sum float64
	for _, c := range checks {
		sum += c.Score
	}
	return sum / float64(len(checks))
}

// pointSum adds each check's weight in proportion to its score. The weights
// of each additive category sum to 100, which bounds the total.
func pointSum(checks []models.Check) float64 {
	var sum float64
	for _, c := range checks {
		sum += c.Weight * c.Score / 100
	}
	return sum
}

// strategies is the per-category aggregation table.
var strategies = map[models.Category]aggregateFunc{
	models.CategoryOS:             meanScore,
	models.CategoryRuntimeVersion: meanScore,
	models.CategoryExtensions:     meanScore,
	models.CategoryWebServer:      meanScore,
	models.CategoryDatabase:       pointSum,
	models.CategoryFilesystem:     pointSum,
	models.CategoryPerformance:    pointSum,
}

// section is a category shown in the summary block, built from one or more
// scoring terms. The runtime section merges version and extension scores.
type section struct {
	name  string
	terms []models.Category
}

var sections = []section{
	{"OS Compatibility", []models.Category{models.CategoryOS}},
	{"PHP Environment", []models.Category{models.CategoryRuntimeVersion, models.CategoryExtensions}},
	{"Web Server", []models.Category{models.CategoryWebServer}},
	{"Database Support", []models.Category{models.CategoryDatabase}},
	{"File System", []models.Category{models.CategoryFilesystem}},
	{"Performance", []models.Category{models.CategoryPerformance}},
}

// TermScore is the aggregate of one scoring category.
type TermScore struct {
	Category models.Category `json:"category" yaml:"category"`
	Score    float64         `json:"score"    yaml:"score"`
}

// Summary is the aggregated view of a check list.
type Summary struct {
	Terms      []TermScore            `json:"terms"      yaml:"terms"`
	Categories []models.CategoryScore `json:"categories" yaml:"categories"`
	Overall    float64                `json:"overall"    yaml:"overall"`
	Verdict    models.Verdict         `json:"verdict"    yaml:"verdict"`
}

// Term returns the score of category c, or 0 when absent.
func (s Summary) Term(c models.Category) float64 {
	for _, t := range s.Terms {
		if t.Category == c {
			return t.Score
		}
	}
	return 0
}

// Summarize groups checks by category, applies each category's strategy, and
// averages the seven terms (version and extensions counted separately) into
// the overall score.
func Summarize(checks []models.Check) Summary {
	byCategory := make(map[models.Category][]models.Check, len(models.Categories))
	for _, c := range checks {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	var s Summary
	var total float64
	for _, cat := range models.Categories {
		score := strategies[cat](byCategory[cat])
		s.Terms = append(s.Terms, TermScore{Category: cat, Score: score})
		total += score
	}
	s.Overall = total / float64(len(models.Categories))
	s.Verdict = models.VerdictFor(s.Overall)

	for _, sec := range sections {
		var sum float64
		for _, term := range sec.terms {
			sum += s.Term(term)
		}
		s.Categories = append(s.Categories, models.CategoryScore{
			Name:  sec.name,
			Score: sum / float64(len(sec.terms)),
		})
	}
	return s
}

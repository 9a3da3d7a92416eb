package models

// Verdict is the discrete label derived from the overall score.
type Verdict string

const (
	VerdictExcellent Verdict = "EXCELLENT"
	VerdictGood      Verdict = "GOOD"
	VerdictFair      Verdict = "FAIR"
	VerdictPoor      Verdict = "POOR"
)

// VerdictFor maps an unrounded overall score onto the fixed bands.
func VerdictFor(overall float64) Verdict {
	switch {
	case overall >= 90:
		return VerdictExcellent
	case overall >= 75:
		return VerdictGood
	case overall >= 60:
		return VerdictFair
	default:
		return VerdictPoor
	}
}

func (v Verdict) String() string {
	return string(v)
}

// Message is the one-line explanation printed next to the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictExcellent:
		return "Ready for production deployment!"
	case VerdictGood:
		return "Minor optimizations recommended"
	case VerdictFair:
		return "Some issues need attention"
	default:
		return "Significant issues need resolution"
	}
}

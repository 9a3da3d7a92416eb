package models

// Status is the outcome of a single check as shown to the operator.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusInfo Status = "INFO"
	StatusFail Status = "FAIL"
)

func (s Status) String() string {
	return string(s)
}

// Marker returns the glyph printed in front of a report line.
func (s Status) Marker() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusInfo:
		return "ℹ"
	default:
		return "✗"
	}
}

// StatusForScore maps a sub-score to a status: full marks pass, zero fails,
// anything in between warns.
func StatusForScore(score float64) Status {
	switch {
	case score >= 100:
		return StatusPass
	case score <= 0:
		return StatusFail
	default:
		return StatusWarn
	}
}

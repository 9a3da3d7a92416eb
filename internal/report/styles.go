package report

import (
	"github.com/CosmoTheDev/cmsprobe/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	green  = lipgloss.Color("#22C55E")
	yellow = lipgloss.Color("#F59E0B")
	red    = lipgloss.Color("#EF4444")
	blue   = lipgloss.Color("#38BDF8")
	slate  = lipgloss.Color("#94A3B8")
	violet = lipgloss.Color("#7C3AED")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(violet)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(green)
	warnStyle    = lipgloss.NewStyle().Foreground(yellow)
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(red)
	infoStyle    = lipgloss.NewStyle().Foreground(blue)
	dimStyle     = lipgloss.NewStyle().Foreground(slate)
)

func statusStyle(s models.Status) lipgloss.Style {
	switch s {
	case models.StatusPass:
		return successStyle
	case models.StatusWarn:
		return warnStyle
	case models.StatusInfo:
		return infoStyle
	default:
		return failStyle
	}
}

func verdictStyle(v models.Verdict) lipgloss.Style {
	switch v {
	case models.VerdictExcellent, models.VerdictGood:
		return successStyle.Bold(true)
	case models.VerdictFair:
		return warnStyle.Bold(true)
	default:
		return failStyle
	}
}

// mark renders "<glyph> text" in the status colour.
func mark(s models.Status, text string) string {
	return statusStyle(s).Render(s.Marker() + " " + text)
}

func passFail(ok bool) models.Status {
	if ok {
		return models.StatusPass
	}
	return models.StatusFail
}

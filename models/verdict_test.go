package models

import "testing"

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		overall float64
		want    Verdict
	}{
		{100, VerdictExcellent},
		{90, VerdictExcellent},
		{89.9, VerdictGood},
		{75, VerdictGood},
		{74.99, VerdictFair},
		{60, VerdictFair},
		{59.9, VerdictPoor},
		{0, VerdictPoor},
	}
	for _, tt := range tests {
		if got := VerdictFor(tt.overall); got != tt.want {
			t.Errorf("VerdictFor(%v) = %s, want %s", tt.overall, got, tt.want)
		}
	}
}

func TestStatusForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Status
	}{
		{100, StatusPass},
		{80, StatusWarn},
		{0.5, StatusWarn},
		{0, StatusFail},
	}
	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.want {
			t.Errorf("StatusForScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

package phpini

import (
	"math"
	"testing"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"512M", 536870912},
		{"512m", 536870912},
		{"1G", 1073741824},
		{"2g", 2147483648},
		{"128K", 131072},
		{"1048576", 1048576},
		{"", 0},
		{"  256M ", 268435456},
		{"abc", 0},
		{"-1", -1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBytes(tt.in); got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnlimited(t *testing.T) {
	if !Unlimited("-1") {
		t.Error("-1 should be unlimited")
	}
	if Unlimited("128M") || Unlimited("") {
		t.Error("finite and empty values should not be unlimited")
	}
}

func TestParseInt(t *testing.T) {
	tests := map[string]int64{
		"120":  120,
		"0":    0,
		"30s":  30,
		"":     0,
		"-5":   -5,
		"nope": 0,
	}
	for in, want := range tests {
		if got := ParseInt(in); got != want {
			t.Errorf("ParseInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBytesSaturates(t *testing.T) {
	for _, in := range []string{"9999999999G", "17179869184G", "99999999999999999999", "9223372036854775807K"} {
		got := ParseBytes(in)
		if got != math.MaxInt64 {
			t.Errorf("ParseBytes(%q) = %d, want MaxInt64", in, got)
		}
		if Unlimited(in) {
			t.Errorf("Unlimited(%q) = true for a huge finite value", in)
		}
	}
	if got := ParseBytes("-99999999999999999999"); got != -math.MaxInt64 {
		t.Errorf("ParseBytes of huge negative = %d", got)
	}
}

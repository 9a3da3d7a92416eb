// Package phpini interprets php.ini style values.
package phpini

import (
	"math"
	"strings"
)

// ParseBytes converts a shorthand memory value such as "512M" or "1g" into a
// byte count. The numeric prefix is multiplied by 1024 once per unit level
// from the suffix down to bytes, so "1G" is 1024*1024*1024. A value with no
// recognised suffix returns the bare integer; an empty or non-numeric value
// returns 0.
//
// "-1" parses to -1. Callers decide what "unlimited" means; see Unlimited.
// Values too large for int64 saturate at math.MaxInt64 (or MinInt64).
func ParseBytes(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n := leadingInt(raw)
	switch raw[len(raw)-1] {
	case 'g', 'G':
		n = mulSat(n, 1024)
		fallthrough
	case 'm', 'M':
		n = mulSat(n, 1024)
		fallthrough
	case 'k', 'K':
		n = mulSat(n, 1024)
	}
	return n
}

// mulSat returns n*m for m > 0, clamped to the int64 range.
func mulSat(n, m int64) int64 {
	switch {
	case n > math.MaxInt64/m:
		return math.MaxInt64
	case n < math.MinInt64/m:
		return math.MinInt64
	}
	return n * m
}

// Unlimited reports whether a memory_limit value disables the limit.
func Unlimited(raw string) bool {
	return ParseBytes(raw) < 0
}

// ParseInt reads the leading integer of raw the way PHP casts a string,
// e.g. "120s" is 120 and "abc" is 0.
func ParseInt(raw string) int64 {
	return leadingInt(strings.TrimSpace(raw))
}

func leadingInt(s string) int64 {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var n int64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int64(s[i] - '0')
		if n > (math.MaxInt64-d)/10 {
			n = math.MaxInt64
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

// Package version compares dotted version strings segment by segment.
package version

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNoVersion is returned when a string has no leading numeric segment.
	ErrNoVersion = errors.New("version: no numeric segment")
	// ErrUnknownOperator is returned for operators Compare does not support.
	ErrUnknownOperator = errors.New("version: unknown operator")
)

// Parse splits v into integer segments. Each dot-separated segment contributes
// its leading digits; parsing stops at the first segment without any, so
// suffixes such as "-dev", "RC1" or "+ubuntu" are ignored.
func Parse(v string) ([]int, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")

	var segs []int
	for _, part := range strings.Split(v, ".") {
		n, digits := leadingInt(part)
		if digits == 0 {
			break
		}
		segs = append(segs, n)
		if digits < len(part) {
			// "2-1ubuntu" ends the version.
			break
		}
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoVersion, v)
	}
	return segs, nil
}

// leadingInt reads the leading digits of s. Segments too large for int
// saturate at math.MaxInt.
func leadingInt(s string) (n, digits int) {
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else if n != math.MaxInt {
			n = n*10 + d
		}
		digits++
	}
	return n, digits
}

// Cmp returns -1, 0 or 1 as a is older than, equal to, or newer than b.
// Missing trailing segments count as zero, so "8.3" equals "8.3.0".
func Cmp(a, b string) (int, error) {
	as, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bs, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return cmpSegments(as, bs), nil
}

func cmpSegments(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Compare evaluates "a op b". Supported operators are >=, >, <=, <, ==, !=
// and their word forms ge, gt, le, lt, eq, ne.
func Compare(a, b, op string) (bool, error) {
	c, err := Cmp(a, b)
	if err != nil {
		return false, err
	}
	switch op {
	case ">=", "ge":
		return c >= 0, nil
	case ">", "gt":
		return c > 0, nil
	case "<=", "le":
		return c <= 0, nil
	case "<", "lt":
		return c < 0, nil
	case "==", "=", "eq":
		return c == 0, nil
	case "!=", "<>", "ne":
		return c != 0, nil
	default:
		return false, fmt.Errorf("%w %q", ErrUnknownOperator, op)
	}
}

// AtLeast reports whether a >= b. Unparseable input is never at least anything.
func AtLeast(a, b string) bool {
	ok, err := Compare(a, b, ">=")
	return err == nil && ok
}

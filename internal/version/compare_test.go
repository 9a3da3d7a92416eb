package version

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b, op string
		want     bool
	}{
		{"8.3.0", "8.3.0", ">=", true},
		{"8.1.5", "8.3.0", ">=", false},
		{"8.10.0", "8.9.0", ">=", true},
		{"8.3", "8.3.0", "==", true},
		{"8.3.2-1ubuntu0.1", "8.3.0", ">=", true},
		{"8.2.12", "8.3.0", "<", true},
		{"24.04", "24.04", ">=", true},
		{"22.04", "24.04", ">=", false},
		{"8.3.0RC1", "8.3.0", "==", true},
		{"8.4.0", "8.3.9", "gt", true},
		{"8.3.0", "8.3.1", "ne", true},
		{"8.3.1", "8.3.1", "le", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.op+" "+tt.b, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareUnknownOperator(t *testing.T) {
	_, err := Compare("1.0", "1.0", "~>")
	if !errors.Is(err, ErrUnknownOperator) {
		t.Fatalf("expected ErrUnknownOperator, got %v", err)
	}
}

func TestParse(t *testing.T) {
	segs, err := Parse("8.3.2-dev")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 3, 2}, segs)

	_, err = Parse("Unknown")
	assert.ErrorIs(t, err, ErrNoVersion)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrNoVersion)
}

func TestAtLeast(t *testing.T) {
	assert.True(t, AtLeast("8.3.0", "8.3.0"))
	assert.False(t, AtLeast("", "8.1.0"))
	assert.False(t, AtLeast("8.0.30", "8.1.0"))
}

func TestParseSaturatesLongSegments(t *testing.T) {
	segs, err := Parse("8.99999999999999999999999.1")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, math.MaxInt, segs[1])

	ok, err := Compare("8.99999999999999999999999", "8.3.0", ">=")
	require.NoError(t, err)
	assert.True(t, ok)
}

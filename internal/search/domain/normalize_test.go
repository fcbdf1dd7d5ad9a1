package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"p7079", "P7079"},
		{"P 85-020", "P85020"},
		{"0986af0709", "0986AF0709"},
		{"vkba 3643", "VKBA3643"},
		{"!!!", ""},
		{"ngk/bkr6e", "NGKBKR6E"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCode(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeCodeIdempotent(t *testing.T) {
	inputs := []string{"", "P 85-020", "0986AF0709", "abc-123/xyz", "уаз 469", "  NGK BKR6E  "}
	for _, in := range inputs {
		once := NormalizeCode(in)
		assert.Equal(t, once, NormalizeCode(once), "input %q", in)
	}
}

func TestNormalizeCodeIgnoresSeparators(t *testing.T) {
	assert.Equal(t, NormalizeCode("P85020"), NormalizeCode("P 85-020"))
	assert.Equal(t, NormalizeCode("VKBA3643"), NormalizeCode("VKBA 3643"))
}

func TestThresholdForLength(t *testing.T) {
	assert.Equal(t, 0.35, ThresholdForLength(3))
	assert.Equal(t, 0.30, ThresholdForLength(4))
	assert.Equal(t, 0.25, ThresholdForLength(5))
	assert.Equal(t, 0.25, ThresholdForLength(6))
	assert.Equal(t, 0.20, ThresholdForLength(7))
	assert.Equal(t, 0.20, ThresholdForLength(40))
}

func TestThresholdForLengthMonotonic(t *testing.T) {
	prev := ThresholdForLength(3)
	for length := 4; length <= 20; length++ {
		current := ThresholdForLength(length)
		assert.LessOrEqual(t, current, prev, "threshold increased at length %d", length)
		prev = current
	}
}

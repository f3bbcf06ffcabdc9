package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUnicode(t *testing.T) {
	tests := []struct {
		glyph rune
		want  float64
	}{
		{'⅒', 1.0 / 10}, {'⅑', 1.0 / 9}, {'⅛', 1.0 / 8}, {'⅐', 1.0 / 7},
		{'⅙', 1.0 / 6}, {'⅕', 1.0 / 5}, {'¼', 0.25}, {'⅓', 1.0 / 3},
		{'⅜', 3.0 / 8}, {'⅖', 2.0 / 5}, {'½', 0.5}, {'⅗', 3.0 / 5},
		{'⅔', 2.0 / 3}, {'⅝', 5.0 / 8}, {'¾', 0.75}, {'⅘', 4.0 / 5},
		{'⅚', 5.0 / 6}, {'⅞', 7.0 / 8},
	}

	for _, tt := range tests {
		t.Run(string(tt.glyph), func(t *testing.T) {
			f := FromUnicode(tt.glyph)
			require.True(t, f.Valid())
			assert.True(t, IsGlyph(tt.glyph))
			assert.Equal(t, tt.want, f.Decimal())
		})
	}
}

func TestFromUnicodeInvalid(t *testing.T) {
	for _, r := range []rune{'a', '1', '/', ' ', '⅟'} {
		f := FromUnicode(r)
		assert.False(t, f.Valid(), "rune %q", r)
		assert.Equal(t, Invalid, f)
		assert.True(t, math.IsNaN(f.Decimal()), "rune %q", r)
		assert.False(t, IsGlyph(r))
	}
}

func TestMixed(t *testing.T) {
	assert.Equal(t, New(5, 4), Mixed(1, FromUnicode('¼')))
	assert.Equal(t, New(45, 4), Mixed(11, New(1, 4)))
	assert.Equal(t, New(3, 2), Mixed(1, New(1, 2)))
	assert.Equal(t, Invalid, Mixed(1, Invalid))
	assert.Equal(t, New(math.MaxInt, 2), Mixed(math.MaxInt/2, New(1, 2)))
	assert.Equal(t, Invalid, Mixed(math.MaxInt, New(1, 2)))
	assert.Equal(t, Invalid, Mixed(math.MaxInt/2+1, New(1, 2)))
}

func TestParseASCII(t *testing.T) {
	tests := []struct {
		in   string
		want Fraction
		ok   bool
	}{
		{"1/2", New(1, 2), true},
		{"3/2", New(3, 2), true},
		{"0/4", New(0, 4), true},
		{"6/4", New(6, 4), true}, // not reduced
		{"1/0", Invalid, false},
		{"1", Invalid, false},
		{"a/2", Invalid, false},
		{"1/", Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseASCII(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want Fraction
		ok   bool
	}{
		{"2", New(2, 1), true},
		{"0.333", New(333, 1000), true},
		{"1.25", New(125, 100), true},
		{"1.5", New(15, 10), true},
		{"1.", Invalid, false},
		{".5", Invalid, false},
		{"x", Invalid, false},
		{"0.000000000000000001", New(1, 1_000_000_000_000_000_000), true},
		{"0.0000000000000000001", Invalid, false},
		{"9223372036854775807", New(math.MaxInt, 1), true},
		{"9223372036854775808", Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDecimal(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	f, _ := ParseDecimal("1.25")
	assert.Equal(t, 1.25, f.Decimal())
}

func TestString(t *testing.T) {
	assert.Equal(t, "3/2", New(3, 2).String())
	assert.Equal(t, "NaN", Invalid.String())
}

// Package fraction holds exact rational quantities as they appear in
// recipe text: ASCII fractions ("3/4"), decimals ("1.25"), Unicode
// vulgar-fraction glyphs ("¾") and mixed numbers ("1 3/4", "1¾").
//
// Fractions are never reduced. "1 1/2" stays 3/2 and "1.50" stays 150/100
// so the payload reflects what was written.
package fraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fraction is a numerator over a denominator. The zero value, with a zero
// denominator, is the invalid fraction.
type Fraction struct {
	Num int
	Den int
}

// Invalid is returned when text does not hold a fraction.
var Invalid = Fraction{}

// New returns num/den as written.
func New(num, den int) Fraction {
	return Fraction{Num: num, Den: den}
}

// Whole returns n/1.
func Whole(n int) Fraction {
	return Fraction{Num: n, Den: 1}
}

// Valid reports whether f is usable as a number.
func (f Fraction) Valid() bool {
	return f.Den != 0
}

// Decimal converts f to a float. Invalid fractions convert to NaN.
func (f Fraction) Decimal() float64 {
	if !f.Valid() {
		return math.NaN()
	}
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	if !f.Valid() {
		return "NaN"
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Mixed combines a whole number with a fractional part:
// whole*den + num over den. It returns Invalid when the numerator does
// not fit in an int.
func Mixed(whole int, part Fraction) Fraction {
	if !part.Valid() || whole < 0 || part.Num < 0 || part.Den < 0 {
		return Invalid
	}
	if whole > (math.MaxInt-part.Num)/part.Den {
		return Invalid
	}
	return Fraction{Num: whole*part.Den + part.Num, Den: part.Den}
}

var glyphs = map[rune]Fraction{
	'⅒': {1, 10},
	'⅑': {1, 9},
	'⅛': {1, 8},
	'⅐': {1, 7},
	'⅙': {1, 6},
	'⅕': {1, 5},
	'¼': {1, 4},
	'⅓': {1, 3},
	'⅜': {3, 8},
	'⅖': {2, 5},
	'½': {1, 2},
	'⅗': {3, 5},
	'⅔': {2, 3},
	'⅝': {5, 8},
	'¾': {3, 4},
	'⅘': {4, 5},
	'⅚': {5, 6},
	'⅞': {7, 8},
}

// FromUnicode maps a vulgar-fraction glyph to its value. Any other rune
// yields Invalid.
func FromUnicode(r rune) Fraction {
	if f, ok := glyphs[r]; ok {
		return f
	}
	return Invalid
}

// IsGlyph reports whether r is a vulgar-fraction glyph.
func IsGlyph(r rune) bool {
	_, ok := glyphs[r]
	return ok
}

// ParseASCII parses "num/den" where den is a natural number. The whole of
// s must be the fraction.
func ParseASCII(s string) (Fraction, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return Invalid, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return Invalid, false
	}
	d, err := strconv.Atoi(den)
	if err != nil || d <= 0 {
		return Invalid, false
	}
	return New(n, d), true
}

// maxFracDigits keeps the power-of-ten denominator within an int.
const maxFracDigits = 18

// ParseDecimal parses an integer or a decimal into an exact fraction over
// a power of ten: "2" is 2/1, "1.25" is 125/100. Numbers whose numerator
// or denominator would overflow an int are rejected.
func ParseDecimal(s string) (Fraction, bool) {
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" || (hasPoint && frac == "") || len(frac) > maxFracDigits {
		return Invalid, false
	}
	den := 1
	for range frac {
		den *= 10
	}
	n, err := strconv.Atoi(whole + frac)
	if err != nil || n < 0 {
		return Invalid, false
	}
	return New(n, den), true
}

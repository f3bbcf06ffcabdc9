package matcher

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/recipeparse/internal/fraction"
	"github.com/hammamikhairi/recipeparse/internal/units"
)

type slangQuantity struct {
	phrase string
	value  fraction.Fraction
}

var slangQuantities = []slangQuantity{
	{"a couple", fraction.Whole(2)},
	{"a few", fraction.Whole(3)},
	{"several", fraction.Whole(3)},
}

var (
	mixedASCIIPattern = regexp.MustCompile(`^(0|[1-9]\d*) (0|[1-9]\d*)/([1-9]\d*)`)
	asciiPattern      = regexp.MustCompile(`^(0|[1-9]\d*)/([1-9]\d*)`)
	integerPattern    = regexp.MustCompile(`^(0|[1-9]\d*)`)
	decimalPattern    = regexp.MustCompile(`^(0|[1-9]\d*)(\.\d+)?`)
)

// Quantity matches a number. Forms are tried in order and the first one
// that matches wins:
//
//	slang       "a couple", "a few", "several"
//	ASCII       "1 1/2", then "3/4"
//	Unicode     "1 ¼" or "1¼", then "¼"
//	decimal     "1.25", "2"
//
// The payload is a fraction.Fraction.
var Quantity Matcher = Func(matchQuantity)

func matchQuantity(text string, off int) (Match, bool) {
	for _, try := range []Func{matchSlangQuantity, matchASCIIFraction, matchUnicodeFraction, matchDecimal} {
		if m, ok := try(text, off); ok {
			return m, true
		}
	}
	return Match{}, false
}

func matchSlangQuantity(text string, off int) (Match, bool) {
	for _, s := range slangQuantities {
		if image, ok := hasPhrase(text, off, s.phrase); ok {
			return Match{Image: image, Payload: s.value}, true
		}
	}
	return Match{}, false
}

func matchASCIIFraction(text string, off int) (Match, bool) {
	rest := text[off:]
	if g := mixedASCIIPattern.FindStringSubmatch(rest); g != nil {
		whole, err := strconv.Atoi(g[1])
		if part, ok := fraction.ParseASCII(g[2] + "/" + g[3]); ok && err == nil {
			if f := fraction.Mixed(whole, part); f.Valid() {
				return Match{Image: g[0], Payload: f}, true
			}
		}
	}
	if image := asciiPattern.FindString(rest); image != "" {
		if f, ok := fraction.ParseASCII(image); ok {
			return Match{Image: image, Payload: f}, true
		}
	}
	return Match{}, false
}

func matchUnicodeFraction(text string, off int) (Match, bool) {
	rest := text[off:]
	if digits := integerPattern.FindString(rest); digits != "" {
		i := len(digits)
		for i < len(rest) && rest[i] == ' ' {
			i++
		}
		r, size := utf8.DecodeRuneInString(rest[i:])
		if part := fraction.FromUnicode(r); part.Valid() {
			whole, err := strconv.Atoi(digits)
			if f := fraction.Mixed(whole, part); err == nil && f.Valid() {
				return Match{Image: rest[:i+size], Payload: f}, true
			}
		}
	}

	r, size := utf8.DecodeRuneInString(rest)
	if f := fraction.FromUnicode(r); f.Valid() {
		return Match{Image: rest[:size], Payload: f}, true
	}
	return Match{}, false
}

func matchDecimal(text string, off int) (Match, bool) {
	image := decimalPattern.FindString(text[off:])
	if image == "" {
		return Match{}, false
	}
	f, ok := fraction.ParseDecimal(image)
	if !ok {
		return Match{}, false
	}
	return Match{Image: image, Payload: f}, true
}

// hasPhrase reports whether phrase, compared case-insensitively, starts at
// off and ends on a word boundary. It returns the text as written.
func hasPhrase(text string, off int, phrase string) (string, bool) {
	end := off + len(phrase)
	if end > len(text) || !strings.EqualFold(text[off:end], phrase) {
		return "", false
	}
	if !units.AtBoundary(text, end) {
		return "", false
	}
	return text[off:end], true
}

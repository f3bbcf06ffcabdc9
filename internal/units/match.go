package units

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hammamikhairi/recipeparse/internal/domain"
)

// Stage is one step of the unit search. Stages run in declaration order.
type Stage int

const (
	StagePluralSynonym Stage = iota
	StageSynonym
	StagePluralAbbreviation
	StageAbbreviation
	// StagePhonetic catches misspellings and runs last.
	StagePhonetic

	stageCount
)

func (s Stage) String() string {
	switch s {
	case StagePluralSynonym:
		return "plural synonym"
	case StageSynonym:
		return "synonym"
	case StagePluralAbbreviation:
		return "plural abbreviation"
	case StageAbbreviation:
		return "abbreviation"
	case StagePhonetic:
		return "phonetic"
	}
	return "unknown"
}

func (s Stage) abbreviated() bool {
	return s == StagePluralAbbreviation || s == StageAbbreviation
}

// Match is a unit found in text.
type Match struct {
	// Image is the text that was matched, including a trailing '.' after
	// an abbreviation.
	Image string
	Unit  domain.Unit
	Stage Stage
}

// Match reports whether a unit name starts at byte offset off of text.
// Stages are tried in order. Within a stage the first entry, in
// enumeration order, with a matching name wins; there is no longest-match
// preference. A name only matches when followed by a word boundary.
func (c *Catalog) Match(text string, off int) (Match, bool) {
	if off < 0 || off >= len(text) {
		return Match{}, false
	}
	rest := text[off:]
	for s := Stage(0); s < stageCount; s++ {
		for i, names := range c.stages[s] {
			for _, name := range names {
				n, ok := matchName(rest, name, s.abbreviated())
				if !ok {
					continue
				}
				return Match{Image: rest[:n], Unit: c.entries[i].Unit, Stage: s}, true
			}
		}
	}
	return Match{}, false
}

// matchName returns the length of name (plus an optional period) at the
// start of s when it ends on a word boundary.
func matchName(s, name string, allowPeriod bool) (int, bool) {
	n := len(name)
	if len(s) < n || !strings.EqualFold(s[:n], name) {
		return 0, false
	}
	if allowPeriod && n < len(s) && s[n] == '.' && AtBoundary(s, n+1) {
		return n + 1, true
	}
	if !AtBoundary(s, n) {
		return 0, false
	}
	return n, true
}

// AtBoundary reports whether byte offset i of s ends a word: it is the end
// of s or the next rune is neither a letter nor a digit.
func AtBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Package matcher holds the character-level recognizers the lexer is
// built from. Each matcher looks at text starting at a byte offset and
// either reports what it found or reports no match. None of them fail:
// deciding that a character is unexpected is the lexer's job.
package matcher

import (
	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/fraction"
)

// Match is a successful recognition. Image is the matched text, always a
// prefix of text[offset:]. Payload carries what was extracted, one of
// fraction.Fraction, Amount, domain.Unit, Header or ListItem, or nil.
type Match struct {
	Image   string
	Payload any
}

// Matcher recognizes one kind of token.
type Matcher interface {
	Match(text string, offset int) (Match, bool)
}

// Func adapts a plain function to Matcher.
type Func func(text string, offset int) (Match, bool)

func (f Func) Match(text string, offset int) (Match, bool) { return f(text, offset) }

// Amount is the payload of an amount match.
type Amount struct {
	Quantity fraction.Fraction
	Unit     domain.Unit
}

// Header is the payload of a section header or banner match.
type Header struct {
	Header string
}

// ListItem is the payload of a list marker match. ID is the marker with
// whitespace and surrounding punctuation removed: "(1.)" gives "1", "- "
// gives "-".
type ListItem struct {
	ID string
}

// Canonical banner titles.
const (
	IngredientsHeader = "ingredients"
	StepsHeader       = "steps"
)

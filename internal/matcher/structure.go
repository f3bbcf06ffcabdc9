package matcher

import (
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"

	"github.com/hammamikhairi/recipeparse/internal/units"
)

const titleChars = `[\t\p{L}\p{M}\p{N}_ ]`

var (
	listItemPattern   = regexp.MustCompile(`^(?:\(?\d+(?:\.\)|[.):]))[ \t]*|^[*•-][ \t]+`)
	delimitedHeader   = regexp.MustCompile(`^#[ \t]*` + titleChars + `+(?:[ \t]*#)?`)
	implicitHeader    = regexp.MustCompile(`^(?:\r?\n)*` + titleChars + `+\r?\n`)
	headerDelimiters  = regexp.MustCompile(`^#[ \t]*|[ \t]*#$`)
	wordPattern       = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_.'/()\[\]{}-]+`)
	stepTextTerminals = "\r\n#"
)

// ListItemID matches a list marker: "1.", "1)", "1:", "(1)", "(1.)",
// "1.)", or one of "*", "•", "-" followed by at least one space or tab.
// Trailing spaces and tabs are part of the image. A numeric marker
// directly followed by a digit is a decimal, not a marker. The payload is
// a ListItem.
var ListItemID Matcher = Func(matchListItemID)

func matchListItemID(text string, off int) (Match, bool) {
	rest := text[off:]
	image := listItemPattern.FindString(rest)
	if image == "" {
		return Match{}, false
	}
	numeric := image[0] == '(' || isDigit(image[0])
	if marker := strings.TrimRight(image, " \t"); numeric && len(marker) < len(rest) && isDigit(rest[len(marker)]) {
		return Match{}, false
	}
	id := strings.Trim(strings.TrimSpace(image), "().:")
	return Match{Image: image, Payload: ListItem{ID: id}}, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Section matches a section header in one of two forms:
//
//	# Title #     delimited; the closing '#' is optional
//	Title\n       a line of its own, only spaces or tabs before it
//
// The implicit form's image includes the line break. The payload is a
// Header holding the trimmed title.
var Section Matcher = Func(matchSection)

func matchSection(text string, off int) (Match, bool) {
	rest := text[off:]
	if image := delimitedHeader.FindString(rest); image != "" {
		title := strings.TrimSpace(headerDelimiters.ReplaceAllString(image, ""))
		if title != "" {
			return Match{Image: image, Payload: Header{Header: title}}, true
		}
	}

	if image := implicitHeader.FindString(rest); image != "" && leadingBlank(text, off) {
		title := strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(image))
		if title != "" {
			return Match{Image: image, Payload: Header{Header: title}}, true
		}
	}
	return Match{}, false
}

// leadingBlank reports whether only spaces and tabs separate off from the
// previous line break or the start of text.
func leadingBlank(text string, off int) bool {
	for i := off - 1; i >= 0; i-- {
		switch text[i] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

// IngredientSection is Section for ingredient lists: it refuses to match
// where an amount starts, so "1 egg\n" stays an ingredient.
func IngredientSection(catalog *units.Catalog) Matcher {
	return Func(func(text string, off int) (Match, bool) {
		if _, ok := matchAmount(catalog, text, off); ok {
			return Match{}, false
		}
		return matchSection(text, off)
	})
}

var (
	ingredientsSynonyms = withPlurals("ingredient", "ingredient list")
	stepsSynonyms       = withPlurals("step", "method", "process", "instruction")
)

func withPlurals(words ...string) map[string]bool {
	set := make(map[string]bool, 2*len(words))
	for _, w := range words {
		set[w] = true
		set[inflection.Plural(w)] = true
	}
	return set
}

// IngredientsBanner matches a section header whose title names the
// ingredient list ("Ingredients", "ingredient list", ...). The payload is
// always Header{IngredientsHeader}.
var IngredientsBanner Matcher = banner(ingredientsSynonyms, IngredientsHeader)

// StepsBanner matches a section header whose title names the
// instructions ("Steps", "Method", "Instructions", ...). The payload is
// always Header{StepsHeader}.
var StepsBanner Matcher = banner(stepsSynonyms, StepsHeader)

func banner(synonyms map[string]bool, canonical string) Matcher {
	return Func(func(text string, off int) (Match, bool) {
		m, ok := matchSection(text, off)
		if !ok {
			return Match{}, false
		}
		// cases.Caser is stateful, so one per call
		title := cases.Fold().String(strings.Join(strings.Fields(m.Payload.(Header).Header), " "))
		if !synonyms[title] {
			return Match{}, false
		}
		return Match{Image: m.Image, Payload: Header{Header: canonical}}, true
	})
}

// StepText matches the text of one step: everything up to the end of the
// line or an inline '#' header, without trailing whitespace.
var StepText Matcher = Func(matchStepText)

func matchStepText(text string, off int) (Match, bool) {
	end := off
	for end < len(text) {
		i := strings.IndexAny(text[end:], stepTextTerminals)
		if i < 0 {
			end = len(text)
			break
		}
		end += i
		if text[end] != '#' {
			break
		}
		if _, ok := matchSection(text, end); ok && end > off {
			break
		}
		end++
	}
	image := strings.TrimRight(text[off:end], " \t")
	if image == "" {
		return Match{}, false
	}
	return Match{Image: image}, true
}

// Word matches a run of letters, digits and the punctuation found inside
// ingredient names (". ' / ( ) [ ] { } -").
var Word Matcher = Func(func(text string, off int) (Match, bool) {
	image := wordPattern.FindString(text[off:])
	if image == "" {
		return Match{}, false
	}
	return Match{Image: image}, true
})

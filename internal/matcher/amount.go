package matcher

import (
	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/fraction"
	"github.com/hammamikhairi/recipeparse/internal/units"
)

type slangAmount struct {
	phrase string
	amount Amount
}

var slangAmounts = []slangAmount{
	{"a pinch", Amount{fraction.Whole(1), domain.UnitPinch}},
	{"a touch", Amount{fraction.Whole(1), domain.UnitPinch}},
	{"to taste", Amount{fraction.Whole(1), domain.UnitPinch}},
}

// Unit matches a unit name from the catalog. The payload is the
// domain.Unit.
func Unit(catalog *units.Catalog) Matcher {
	return Func(func(text string, off int) (Match, bool) {
		m, ok := catalog.Match(text, off)
		if !ok {
			return Match{}, false
		}
		return Match{Image: m.Image, Payload: m.Unit}, true
	})
}

// AmountOf matches the amount of an ingredient: a slang amount ("a pinch",
// "to taste"), or a quantity followed by one space and a unit. A quantity
// with no unit after it still matches, as that many pieces. The payload is
// an Amount.
func AmountOf(catalog *units.Catalog) Matcher {
	return Func(func(text string, off int) (Match, bool) {
		return matchAmount(catalog, text, off)
	})
}

func matchAmount(catalog *units.Catalog, text string, off int) (Match, bool) {
	for _, s := range slangAmounts {
		if image, ok := hasPhrase(text, off, s.phrase); ok {
			return Match{Image: image, Payload: s.amount}, true
		}
	}

	q, ok := matchQuantity(text, off)
	if !ok {
		return Match{}, false
	}
	quantity := q.Payload.(fraction.Fraction)

	unitAt := off + len(q.Image) + 1
	if unitAt < len(text) && text[unitAt-1] == ' ' {
		if u, ok := catalog.Match(text, unitAt); ok {
			return Match{
				Image:   text[off : unitAt+len(u.Image)],
				Payload: Amount{Quantity: quantity, Unit: u.Unit},
			}, true
		}
	}
	return Match{Image: q.Image, Payload: Amount{Quantity: quantity, Unit: domain.UnitPiece}}, true
}

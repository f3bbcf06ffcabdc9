package units

import (
	"github.com/antzucaro/matchr"
	"github.com/jinzhu/inflection"

	"github.com/hammamikhairi/recipeparse/internal/domain"
)

var (
	_ domain.Pluralizer      = InflectionPluralizer{}
	_ domain.PhoneticEncoder = MetaphoneEncoder{}
)

// InflectionPluralizer pluralizes with English inflection rules.
type InflectionPluralizer struct{}

func (InflectionPluralizer) Plural(word string) string {
	return inflection.Plural(word)
}

// MetaphoneEncoder returns the primary Double Metaphone code of a word.
type MetaphoneEncoder struct{}

func (MetaphoneEncoder) Encode(word string) string {
	primary, _ := matchr.DoubleMetaphone(word)
	return primary
}

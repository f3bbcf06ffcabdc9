package lexer

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/matcher"
	"github.com/hammamikhairi/recipeparse/internal/units"
)

// Mode selects which rules the lexer tries.
type Mode int

const (
	// ModeRecipe only recognizes the banners that open an ingredients
	// or steps block.
	ModeRecipe Mode = iota
	ModeIngredients
	ModeSteps
)

func (m Mode) String() string {
	switch m {
	case ModeRecipe:
		return "recipe"
	case ModeIngredients:
		return "ingredients"
	case ModeSteps:
		return "steps"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts "recipe", "ingredients" or "steps" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recipe", "":
		return ModeRecipe, nil
	case "ingredients":
		return ModeIngredients, nil
	case "steps":
		return ModeSteps, nil
	}
	return ModeRecipe, fmt.Errorf("mode %q: %w", s, domain.ErrInvalidConfig)
}

type rule struct {
	kind  Kind
	match matcher.Matcher
}

// Order within a mode matters: the first rule that matches wins.
func rulesFor(catalog *units.Catalog) map[Mode][]rule {
	return map[Mode][]rule{
		ModeRecipe: {
			{KindIngredientsBanner, matcher.IngredientsBanner},
			{KindStepsBanner, matcher.StepsBanner},
		},
		ModeIngredients: {
			{KindStepsBanner, matcher.StepsBanner},
			{KindListItemID, matcher.ListItemID},
			{KindAmount, matcher.AmountOf(catalog)},
			{KindQuantity, matcher.Quantity},
			{KindSectionHeader, matcher.IngredientSection(catalog)},
			{KindUnit, matcher.Unit(catalog)},
			{KindWord, matcher.Word},
		},
		ModeSteps: {
			{KindIngredientsBanner, matcher.IngredientsBanner},
			{KindListItemID, matcher.ListItemID},
			{KindSectionHeader, matcher.Section},
			{KindStepText, matcher.StepText},
		},
	}
}

// transitions maps a mode and the kind of token just produced to the next
// mode. Banners are valid in every mode.
var transitions = map[Mode]map[Kind]Mode{
	ModeRecipe: {
		KindIngredientsBanner: ModeIngredients,
		KindStepsBanner:       ModeSteps,
	},
	ModeIngredients: {
		KindStepsBanner: ModeSteps,
	},
	ModeSteps: {
		KindIngredientsBanner: ModeIngredients,
	},
}

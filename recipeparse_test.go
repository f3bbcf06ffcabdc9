package recipeparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/lexer"
	"github.com/hammamikhairi/recipeparse/internal/matcher"
)

func TestToIngredientsEndToEnd(t *testing.T) {
	input := "1 1/2 cp all-purpose flour\n1 tsp vanilla extract,\n1 cup milk\n1 egg"
	res, err := ToIngredients(input)
	require.NoError(t, err)

	want := []Ingredient{
		{Amount: Amount{Quantity: 1.5, Unit: domain.UnitCup}, Name: "all-purpose flour"},
		{Amount: Amount{Quantity: 1, Unit: domain.UnitTeaspoon}, Name: "vanilla extract"},
		{Amount: Amount{Quantity: 1, Unit: domain.UnitCup}, Name: "milk"},
		{Amount: Amount{Quantity: 1, Unit: domain.UnitPiece}, Name: "egg"},
	}
	if diff := cmp.Diff(want, res.Ingredients); diff != "" {
		t.Errorf("ingredients mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, res.LexErrors, 1)
	assert.Equal(t, byte(','), input[res.LexErrors[0].Offset])
	assert.Empty(t, res.ParseErrors)
}

func TestPoundBeforePint(t *testing.T) {
	res := Lex("1/2 pnt", WithStartRule(RuleIngredients))
	require.Len(t, res.Tokens, 1)
	assert.Equal(t, domain.UnitPound, res.Tokens[0].Payload.(matcher.Amount).Unit)
}

func TestSectionStamping(t *testing.T) {
	input := "# dough #\n1 cup flour\n2 eggs\n# glaze #\n1 cup sugar\n1 tbsp milk"

	tests := []struct {
		deDup bool
		want  []string
	}{
		{false, []string{"dough", "dough", "glaze", "glaze"}},
		{true, []string{"dough", "", "glaze", ""}},
	}
	for _, tt := range tests {
		res, err := ToIngredients(input, WithDeDupSections(tt.deDup))
		require.NoError(t, err)
		require.False(t, res.HasErrors())

		var got []string
		for _, ing := range res.Ingredients {
			got = append(got, ing.Section)
		}
		assert.Equal(t, tt.want, got, "deDup=%v", tt.deDup)
	}
}

func TestIndependentConversionsAgree(t *testing.T) {
	input := "Ingredients\n- 1 cup milk\n# dough #\n2 eggs\nSteps\nPrep\n1. whisk\n2. rest, then bake"
	a, errA := ToRecipe(input)
	b, errB := NewConverter().Convert(input)
	require.NoError(t, errA)
	require.NoError(t, errB)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("results differ (-a +b):\n%s", diff)
	}
}

func TestBannerCanonicalization(t *testing.T) {
	for _, banner := range []string{"Ingredients", "Ingredient List", "ingredients"} {
		t.Run(banner, func(t *testing.T) {
			res := Lex(banner + "\n1 egg")
			require.NotEmpty(t, res.Tokens)
			assert.Equal(t, lexer.KindIngredientsBanner, res.Tokens[0].Kind)
			assert.Equal(t, matcher.Header{Header: "ingredients"}, res.Tokens[0].Payload)
		})
	}
}

func TestToSteps(t *testing.T) {
	res, err := ToSteps("Prep\n* chop the onions\n* mince the garlic\nCook\n1. fry everything")
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{ID: "*", Title: "Prep", Text: "chop the onions"},
		{ID: "*", Title: "Prep", Text: "mince the garlic"},
		{ID: "1.", Title: "Cook", Text: "fry everything"},
	}, res.Steps)
}

func TestParseTree(t *testing.T) {
	res := Parse("Steps\n1. stir")
	require.NotNil(t, res.Tree)
	assert.Len(t, res.Tokens, 3)
	assert.Empty(t, res.LexErrors)
	assert.Empty(t, res.ParseErrors)
}

func TestRuleOverridesOption(t *testing.T) {
	res, err := ToSteps("1. stir", WithStartRule(RuleIngredients))
	require.NoError(t, err)
	assert.Len(t, res.Steps, 1)
	assert.Equal(t, RuleSteps, res.Rule)
}

func TestParseRuleErrors(t *testing.T) {
	_, err := ParseRule("dessert")
	assert.True(t, errors.Is(err, ErrUnknownStartRule))
}

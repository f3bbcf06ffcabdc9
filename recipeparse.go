// Package recipeparse converts free-form recipe text into structured
// recipes.
//
// Text is tokenized by a lexer that switches between ingredient and step
// vocabularies when it sees an "Ingredients" or "Steps" banner, parsed
// into a concrete syntax tree, and folded into Recipe, Ingredient and
// Step values:
//
//	res, err := recipeparse.ToRecipe(text, recipeparse.WithDeDupSections(true))
//	if err != nil {
//		return err
//	}
//	for _, e := range res.Errors() {
//		fmt.Println(e)
//	}
//	fmt.Println(res.Recipe.Ingredients)
//
// Malformed text never fails a conversion. Characters the lexer cannot
// place are skipped and recorded as lexical errors, and token sequences
// that break the grammar are recorded as parse errors; everything else
// is still returned.
//
// The package-level functions build a fresh Converter per call. Callers
// converting many texts can hold a Converter instead; it is reusable but
// not safe for concurrent use.
package recipeparse

import (
	"slices"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/lexer"
	"github.com/hammamikhairi/recipeparse/internal/parser"
	"github.com/hammamikhairi/recipeparse/internal/recipe"
)

type (
	Recipe     = domain.Recipe
	Ingredient = domain.Ingredient
	Step       = domain.Step
	Amount     = domain.Amount
	Unit       = domain.Unit

	Token      = lexer.Token
	TokenKind  = lexer.Kind
	LexError   = lexer.Error
	LexResult  = lexer.Result
	ParseError = parser.Error
	Node       = parser.Node
	Rule       = parser.Rule

	Converter   = recipe.Converter
	Option      = recipe.Option
	Result      = recipe.Result
	ParseResult = recipe.ParseResult
)

// Start rules.
const (
	RuleRecipe      = parser.RuleRecipe
	RuleIngredients = parser.RuleIngredients
	RuleSteps       = parser.RuleSteps
)

// Options.
var (
	WithStartRule     = recipe.WithStartRule
	WithDeDupSections = recipe.WithDeDupSections
	WithLogWarnings   = recipe.WithLogWarnings
	WithLogger        = recipe.WithLogger
	WithCatalog       = recipe.WithCatalog
)

// ParseRule converts "recipe", "ingredients" or "steps" into a Rule.
var ParseRule = parser.ParseRule

// Errors returned for programmer mistakes; malformed text never produces
// them.
var (
	ErrUnexpectedNode   = domain.ErrUnexpectedNode
	ErrUnknownStartRule = domain.ErrUnknownStartRule
)

// NewConverter creates a reusable converter.
func NewConverter(opts ...Option) *Converter {
	return recipe.NewConverter(opts...)
}

// Lex tokenizes text. The start rule picks the initial lexer mode.
func Lex(text string, opts ...Option) LexResult {
	return recipe.NewConverter(opts...).Lex(text)
}

// Parse tokenizes and parses text.
func Parse(text string, opts ...Option) ParseResult {
	return recipe.NewConverter(opts...).Parse(text)
}

// ConvertText runs the whole pipeline with the configured start rule.
func ConvertText(text string, opts ...Option) (Result, error) {
	return recipe.NewConverter(opts...).Convert(text)
}

// ToRecipe converts a whole recipe; the result is in Result.Recipe.
func ToRecipe(text string, opts ...Option) (Result, error) {
	return ConvertText(text, withRule(opts, RuleRecipe)...)
}

// ToIngredients converts an ingredient list; the result is in
// Result.Ingredients.
func ToIngredients(text string, opts ...Option) (Result, error) {
	return ConvertText(text, withRule(opts, RuleIngredients)...)
}

// ToSteps converts a list of steps; the result is in Result.Steps.
func ToSteps(text string, opts ...Option) (Result, error) {
	return ConvertText(text, withRule(opts, RuleSteps)...)
}

func withRule(opts []Option, r Rule) []Option {
	return slices.Concat(opts, []Option{WithStartRule(r)})
}

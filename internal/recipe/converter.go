// Package recipe ties the lexer, parser and visitor together into a
// converter from recipe text to domain values.
package recipe

import (
	"cmp"
	"slices"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/lexer"
	"github.com/hammamikhairi/recipeparse/internal/logger"
	"github.com/hammamikhairi/recipeparse/internal/parser"
	"github.com/hammamikhairi/recipeparse/internal/units"
	"github.com/hammamikhairi/recipeparse/internal/visitor"
)

// Converter owns one lexer, one parser and one visitor. Calls run one at
// a time; goroutines that convert concurrently each need their own
// Converter.
type Converter struct {
	rule    parser.Rule
	lexer   *lexer.Lexer
	parser  *parser.Parser
	visitor *visitor.Visitor
	log     *logger.Logger
}

type config struct {
	rule        parser.Rule
	deDup       bool
	logWarnings bool
	log         *logger.Logger
	catalog     *units.Catalog
}

// Option configures a Converter.
type Option func(*config)

// WithStartRule sets what the text is expected to hold: a whole recipe,
// only ingredients, or only steps.
func WithStartRule(r parser.Rule) Option {
	return func(c *config) { c.rule = r }
}

// WithDeDupSections stamps section titles only on the first item of each
// section.
func WithDeDupSections(on bool) Option {
	return func(c *config) { c.deDup = on }
}

// WithLogWarnings makes the lexer log a warning when it skips characters.
func WithLogWarnings(on bool) Option {
	return func(c *config) { c.logWarnings = on }
}

// WithLogger sets the logger shared by all stages.
func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithCatalog replaces the built-in unit catalog.
func WithCatalog(cat *units.Catalog) Option {
	return func(c *config) { c.catalog = cat }
}

// NewConverter creates a converter.
func NewConverter(opts ...Option) *Converter {
	cfg := config{rule: parser.RuleRecipe}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.Nop()
	}
	if cfg.catalog == nil {
		cfg.catalog = units.Default()
	}

	return &Converter{
		rule: cfg.rule,
		lexer: lexer.New(
			lexer.WithStartMode(cfg.rule.LexerMode()),
			lexer.WithLogger(cfg.log),
			lexer.WithLogWarnings(cfg.logWarnings),
			lexer.WithCatalog(cfg.catalog),
		),
		parser:  parser.New(parser.WithStartRule(cfg.rule), parser.WithLogger(cfg.log)),
		visitor: visitor.New(visitor.WithDeDupSections(cfg.deDup), visitor.WithLogger(cfg.log)),
		log:     cfg.log,
	}
}

// Rule returns the start rule.
func (c *Converter) Rule() parser.Rule { return c.rule }

// ParseResult is a parse tree together with the tokens it was built from
// and the errors of both stages.
type ParseResult struct {
	Tree        parser.Node
	Tokens      []lexer.Token
	LexErrors   []lexer.Error
	ParseErrors []parser.Error
}

// Result is the outcome of a conversion. Only the field matching the
// start rule is set: Recipe, Ingredients or Steps.
type Result struct {
	Rule        parser.Rule
	Recipe      *domain.Recipe
	Ingredients []domain.Ingredient
	Steps       []domain.Step
	Tokens      []lexer.Token
	LexErrors   []lexer.Error
	ParseErrors []parser.Error
}

// HasErrors reports whether lexing or parsing recorded any error.
func (r Result) HasErrors() bool {
	return len(r.LexErrors) > 0 || len(r.ParseErrors) > 0
}

// Errors returns lexical and grammar errors together, ordered by offset.
func (r Result) Errors() []error {
	type located struct {
		offset int
		err    error
	}
	all := make([]located, 0, len(r.LexErrors)+len(r.ParseErrors))
	for _, e := range r.LexErrors {
		all = append(all, located{e.Offset, e})
	}
	for _, e := range r.ParseErrors {
		all = append(all, located{e.Offset, e})
	}
	slices.SortStableFunc(all, func(a, b located) int { return cmp.Compare(a.offset, b.offset) })

	out := make([]error, len(all))
	for i, l := range all {
		out[i] = l.err
	}
	return out
}

// Lex tokenizes text starting in the mode that matches the start rule.
func (c *Converter) Lex(text string) lexer.Result {
	return c.lexer.Lex(text)
}

// Parse tokenizes and parses text.
func (c *Converter) Parse(text string) ParseResult {
	lexed := c.lexer.Lex(text)
	parsed := c.parser.Parse(lexed.Tokens)
	return ParseResult{
		Tree:        parsed.Tree,
		Tokens:      lexed.Tokens,
		LexErrors:   lexed.Errors,
		ParseErrors: parsed.Errors,
	}
}

// Convert runs the whole pipeline. Malformed text is not an error: the
// result holds what was recognized plus the recorded errors. The returned
// error is only set when the tree does not fit the start rule.
func (c *Converter) Convert(text string) (Result, error) {
	c.log.Debug("converting %d bytes as %s", len(text), c.rule)
	parsed := c.Parse(text)
	res := Result{
		Rule:        c.rule,
		Tokens:      parsed.Tokens,
		LexErrors:   parsed.LexErrors,
		ParseErrors: parsed.ParseErrors,
	}

	var err error
	switch c.rule {
	case parser.RuleIngredients:
		res.Ingredients, err = c.visitor.Ingredients(parsed.Tree)
	case parser.RuleSteps:
		res.Steps, err = c.visitor.Steps(parsed.Tree)
	default:
		res.Recipe, err = c.visitor.Recipe(parsed.Tree)
	}
	if err != nil {
		return res, err
	}
	if res.HasErrors() {
		c.log.Debug("converted with %d lex errors, %d parse errors", len(res.LexErrors), len(res.ParseErrors))
	}
	return res, nil
}

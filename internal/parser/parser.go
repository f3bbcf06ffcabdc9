// Package parser builds a concrete syntax tree from lexer tokens.
//
// Grammar (recursive descent, one token of lookahead):
//
//	sections           := ( IngredientsBanner ingredients | StepsBanner steps )+
//	ingredients        := ( ingredientsSection | ingredientItem )+
//	ingredientsSection := SectionHeader ingredientItem+
//	ingredientItem     := [ ListItemID ] Amount ingredientName
//	ingredientName     := ( Word | Unit )+
//	steps              := ( stepsSection | stepItem )+
//	stepsSection       := SectionHeader stepItem+
//	stepItem           := [ ListItemID ] StepText
//
// sections, ingredients and steps can each be the start rule. The only
// decision point is whether the next token is a SectionHeader.
//
// Grammar errors never stop the parse. They are recorded, the parser
// skips to the next token that can start an item, a section or a block,
// and the tree holds whatever was recognized.
package parser

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/lexer"
	"github.com/hammamikhairi/recipeparse/internal/logger"
)

// Rule is a start rule.
type Rule int

const (
	RuleRecipe Rule = iota
	RuleIngredients
	RuleSteps
)

func (r Rule) String() string {
	switch r {
	case RuleRecipe:
		return "recipe"
	case RuleIngredients:
		return "ingredients"
	case RuleSteps:
		return "steps"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule converts "recipe", "ingredients" or "steps" into a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recipe", "":
		return RuleRecipe, nil
	case "ingredients":
		return RuleIngredients, nil
	case "steps":
		return RuleSteps, nil
	}
	return RuleRecipe, fmt.Errorf("rule %q: %w", s, domain.ErrUnknownStartRule)
}

// LexerMode is the lexer mode that matches the start rule.
func (r Rule) LexerMode() lexer.Mode {
	switch r {
	case RuleIngredients:
		return lexer.ModeIngredients
	case RuleSteps:
		return lexer.ModeSteps
	}
	return lexer.ModeRecipe
}

// Result is the tree and the grammar errors of one parse. Tree is a
// *Sections, *IngredientsBlock or *StepsBlock depending on the rule.
type Result struct {
	Tree   Node
	Errors []Error
}

// Parser holds configuration and the state of the parse in progress. It
// can be reused for many token streams, one at a time; it is not safe for
// concurrent use.
type Parser struct {
	rule   Rule
	log    *logger.Logger
	tokens []lexer.Token
	pos    int
	errors []Error
}

// Option configures a Parser.
type Option func(*Parser)

// WithStartRule sets the start rule. The default is RuleRecipe.
func WithStartRule(r Rule) Option {
	return func(p *Parser) { p.rule = r }
}

// WithLogger sets the logger for debug output.
func WithLogger(log *logger.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{rule: RuleRecipe}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	return p
}

// Rule returns the start rule.
func (p *Parser) Rule() Rule { return p.rule }

// Errors returns the grammar errors of the most recent parse.
func (p *Parser) Errors() []Error { return p.errors }

// Parse builds the tree for tokens using the start rule.
func (p *Parser) Parse(tokens []lexer.Token) Result {
	p.tokens = tokens
	p.pos = 0
	p.errors = nil

	var tree Node
	switch p.rule {
	case RuleIngredients:
		tree = p.ingredients(nil)
	case RuleSteps:
		tree = p.steps(nil)
	default:
		tree = p.sections()
	}
	if !p.atEnd() {
		tok := p.peek()
		p.errorAt(tok, "input", nil, fmt.Sprintf("unexpected %s %q after %s", tok.Kind, tok.Image, p.rule))
	}
	return Result{Tree: tree, Errors: p.errors}
}

// ── token helpers ────────────────────────────────────────────────

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *Parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) at(kinds ...lexer.Kind) bool {
	if p.atEnd() {
		return false
	}
	k := p.peek().Kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func (p *Parser) optional(kind lexer.Kind) *lexer.Token {
	if !p.at(kind) {
		return nil
	}
	tok := p.advance()
	return &tok
}

func (p *Parser) atBanner() bool {
	return p.at(lexer.KindIngredientsBanner, lexer.KindStepsBanner)
}

// ── errors and recovery ──────────────────────────────────────────

func (p *Parser) errorAt(tok lexer.Token, context string, expected []lexer.Kind, msg string) {
	p.errors = append(p.errors, Error{
		Offset:   tok.Offset,
		Line:     tok.Line,
		Column:   tok.Column,
		Message:  msg,
		Context:  context,
		Expected: expected,
		Got:      tok.Kind,
	})
}

func (p *Parser) expected(context string, kinds ...lexer.Kind) {
	if p.atEnd() {
		e := Error{
			Message:  fmt.Sprintf("expected %s in %s, got end of input", describeExpected(kinds), context),
			Context:  context,
			Expected: kinds,
			AtEnd:    true,
		}
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			e.Offset, e.Line, e.Column = last.Offset, last.Line, last.Column
		}
		p.errors = append(p.errors, e)
		return
	}
	tok := p.peek()
	p.errorAt(tok, context, kinds, fmt.Sprintf("expected %s in %s, got %s %q", describeExpected(kinds), context, tok.Kind, tok.Image))
}

// recover skips at least one token, then up to the next token in sync.
func (p *Parser) recover(sync ...lexer.Kind) {
	from := p.pos
	if !p.atEnd() {
		p.advance()
	}
	for !p.atEnd() && !p.at(sync...) {
		p.advance()
	}
	p.log.Debug("parser: resync skipped tokens %d..%d", from, p.pos)
}

var (
	ingredientSync = []lexer.Kind{lexer.KindListItemID, lexer.KindAmount, lexer.KindSectionHeader, lexer.KindIngredientsBanner, lexer.KindStepsBanner}
	stepSync       = []lexer.Kind{lexer.KindListItemID, lexer.KindStepText, lexer.KindSectionHeader, lexer.KindIngredientsBanner, lexer.KindStepsBanner}
	bannerSync     = []lexer.Kind{lexer.KindIngredientsBanner, lexer.KindStepsBanner}
)

// ── rules ────────────────────────────────────────────────────────

func (p *Parser) sections() *Sections {
	root := &Sections{}
	for !p.atEnd() {
		switch {
		case p.at(lexer.KindIngredientsBanner):
			root.Blocks = append(root.Blocks, p.ingredients(p.optional(lexer.KindIngredientsBanner)))
		case p.at(lexer.KindStepsBanner):
			root.Blocks = append(root.Blocks, p.steps(p.optional(lexer.KindStepsBanner)))
		default:
			p.expected("recipe", bannerSync...)
			p.recover(bannerSync...)
		}
	}
	if len(root.Blocks) == 0 && len(p.errors) == 0 {
		p.expected("recipe", bannerSync...)
	}
	return root
}

func (p *Parser) ingredients(banner *lexer.Token) *IngredientsBlock {
	block := &IngredientsBlock{Banner: banner}
	for !p.atEnd() && !p.atBanner() {
		if p.at(lexer.KindSectionHeader) {
			if sec := p.section("ingredients section", p.ingredientItem, lexer.KindListItemID, lexer.KindAmount); sec != nil {
				block.Entries = append(block.Entries, sec)
			}
			continue
		}
		if item := p.ingredientItem(); item != nil {
			block.Entries = append(block.Entries, item)
		}
	}
	if len(block.Entries) == 0 {
		p.expected("ingredients", lexer.KindListItemID, lexer.KindAmount, lexer.KindSectionHeader)
	}
	return block
}

func (p *Parser) steps(banner *lexer.Token) *StepsBlock {
	block := &StepsBlock{Banner: banner}
	for !p.atEnd() && !p.atBanner() {
		if p.at(lexer.KindSectionHeader) {
			if sec := p.section("steps section", p.stepItem, lexer.KindListItemID, lexer.KindStepText); sec != nil {
				block.Entries = append(block.Entries, sec)
			}
			continue
		}
		if item := p.stepItem(); item != nil {
			block.Entries = append(block.Entries, item)
		}
	}
	if len(block.Entries) == 0 {
		p.expected("steps", lexer.KindListItemID, lexer.KindStepText, lexer.KindSectionHeader)
	}
	return block
}

// section parses a header and the items under it. A header with no items
// is reported and dropped.
func (p *Parser) section(context string, item func() Node, starts ...lexer.Kind) *Section {
	sec := &Section{Header: p.advance()}
	for p.at(starts...) {
		if n := item(); n != nil {
			sec.Items = append(sec.Items, n)
		}
	}
	if len(sec.Items) == 0 {
		p.errorAt(sec.Header, context, starts, fmt.Sprintf("section %q has no items", strings.TrimSpace(sec.Header.Image)))
		return nil
	}
	return sec
}

func (p *Parser) ingredientItem() Node {
	item := &IngredientItem{ListItem: p.optional(lexer.KindListItemID)}
	if !p.at(lexer.KindAmount) {
		p.expected("ingredient item", lexer.KindAmount)
		if !p.atEnd() && !p.at(ingredientSync...) {
			p.recover(ingredientSync...)
		}
		return nil
	}
	item.Amount = &Amount{Token: p.advance()}

	item.Name = &IngredientName{}
	for p.at(lexer.KindWord, lexer.KindUnit) {
		item.Name.Words = append(item.Name.Words, p.advance())
	}
	if len(item.Name.Words) == 0 {
		p.expected("ingredient name", lexer.KindWord)
	}
	return item
}

func (p *Parser) stepItem() Node {
	listItem := p.optional(lexer.KindListItemID)
	if !p.at(lexer.KindStepText) {
		p.expected("step item", lexer.KindStepText)
		if !p.atEnd() && !p.at(stepSync...) {
			p.recover(stepSync...)
		}
		return nil
	}
	return &StepItem{ListItem: listItem, Text: p.advance()}
}

// Package visitor folds a parse tree into the domain AST.
package visitor

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/lexer"
	"github.com/hammamikhairi/recipeparse/internal/logger"
	"github.com/hammamikhairi/recipeparse/internal/matcher"
	"github.com/hammamikhairi/recipeparse/internal/parser"
)

// Visitor turns parser nodes into recipes, ingredients and steps. It
// holds no per-tree state, so one instance can fold any number of trees.
type Visitor struct {
	deDup bool
	log   *logger.Logger
}

// Option configures a Visitor.
type Option func(*Visitor)

// WithDeDupSections makes only the first item of each section carry the
// section title. The rest get "".
func WithDeDupSections(on bool) Option {
	return func(v *Visitor) { v.deDup = on }
}

// WithLogger sets the logger for debug output.
func WithLogger(log *logger.Logger) Option {
	return func(v *Visitor) { v.log = log }
}

// New creates a visitor.
func New(opts ...Option) *Visitor {
	v := &Visitor{}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = logger.Nop()
	}
	return v
}

// DeDupSections reports whether section titles are de-duplicated.
func (v *Visitor) DeDupSections() bool { return v.deDup }

// Recipe folds a *parser.Sections tree. Ingredients and steps from every
// block are concatenated in source order.
func (v *Visitor) Recipe(n parser.Node) (*domain.Recipe, error) {
	root, ok := n.(*parser.Sections)
	if !ok {
		return nil, unexpected(n, "recipe")
	}
	r := &domain.Recipe{Ingredients: []domain.Ingredient{}, Steps: []domain.Step{}}
	for _, b := range root.Blocks {
		switch b := b.(type) {
		case *parser.IngredientsBlock:
			items, err := v.Ingredients(b)
			if err != nil {
				return nil, err
			}
			r.Ingredients = append(r.Ingredients, items...)
		case *parser.StepsBlock:
			steps, err := v.Steps(b)
			if err != nil {
				return nil, err
			}
			r.Steps = append(r.Steps, steps...)
		default:
			return nil, unexpected(b, "recipe block")
		}
	}
	v.log.Debug("visitor: %d ingredients, %d steps", len(r.Ingredients), len(r.Steps))
	return r, nil
}

// Ingredients folds a *parser.IngredientsBlock.
func (v *Visitor) Ingredients(n parser.Node) ([]domain.Ingredient, error) {
	block, ok := n.(*parser.IngredientsBlock)
	if !ok {
		return nil, unexpected(n, "ingredients")
	}
	out := []domain.Ingredient{}
	for _, e := range block.Entries {
		switch e := e.(type) {
		case *parser.Section:
			items, err := v.ingredientsSection(e)
			if err != nil {
				return nil, err
			}
			out = append(out, items...)
		case *parser.IngredientItem:
			item, err := v.ingredient(e)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		default:
			return nil, unexpected(e, "ingredients entry")
		}
	}
	return out, nil
}

// Steps folds a *parser.StepsBlock.
func (v *Visitor) Steps(n parser.Node) ([]domain.Step, error) {
	block, ok := n.(*parser.StepsBlock)
	if !ok {
		return nil, unexpected(n, "steps")
	}
	out := []domain.Step{}
	for _, e := range block.Entries {
		switch e := e.(type) {
		case *parser.Section:
			steps, err := v.stepsSection(e)
			if err != nil {
				return nil, err
			}
			out = append(out, steps...)
		case *parser.StepItem:
			out = append(out, step(e))
		default:
			return nil, unexpected(e, "steps entry")
		}
	}
	return out, nil
}

func (v *Visitor) ingredientsSection(sec *parser.Section) ([]domain.Ingredient, error) {
	title := headerTitle(sec.Header)
	out := make([]domain.Ingredient, 0, len(sec.Items))
	for i, n := range sec.Items {
		item, ok := n.(*parser.IngredientItem)
		if !ok {
			return nil, unexpected(n, "ingredients section")
		}
		ing, err := v.ingredient(item)
		if err != nil {
			return nil, err
		}
		if v.stamp(i) {
			ing.Section = title
		}
		out = append(out, ing)
	}
	return out, nil
}

func (v *Visitor) stepsSection(sec *parser.Section) ([]domain.Step, error) {
	title := headerTitle(sec.Header)
	out := make([]domain.Step, 0, len(sec.Items))
	for i, n := range sec.Items {
		item, ok := n.(*parser.StepItem)
		if !ok {
			return nil, unexpected(n, "steps section")
		}
		s := step(item)
		if v.stamp(i) {
			s.Title = title
		}
		out = append(out, s)
	}
	return out, nil
}

func (v *Visitor) stamp(i int) bool { return !v.deDup || i == 0 }

func (v *Visitor) ingredient(item *parser.IngredientItem) (domain.Ingredient, error) {
	if item.Amount == nil {
		return domain.Ingredient{}, unexpected(item, "ingredient without amount")
	}
	amount, err := Amount(item.Amount)
	if err != nil {
		return domain.Ingredient{}, err
	}
	return domain.Ingredient{Amount: amount, Name: name(item.Name)}, nil
}

// Amount converts an amount node into a decimal quantity and a unit.
func Amount(n *parser.Amount) (domain.Amount, error) {
	a, ok := n.Token.Payload.(matcher.Amount)
	if !ok {
		return domain.Amount{}, fmt.Errorf("amount %q has payload %T: %w", n.Token.Image, n.Token.Payload, domain.ErrUnexpectedNode)
	}
	return domain.Amount{Quantity: a.Quantity.Decimal(), Unit: a.Unit}, nil
}

func name(n *parser.IngredientName) string {
	if n == nil {
		return ""
	}
	words := make([]string, len(n.Words))
	for i, w := range n.Words {
		words[i] = w.Image
	}
	return strings.Join(words, " ")
}

func step(item *parser.StepItem) domain.Step {
	s := domain.Step{Text: item.Text.Image}
	if item.ListItem != nil {
		s.ID = strings.TrimSpace(item.ListItem.Image)
	}
	return s
}

func headerTitle(tok lexer.Token) string {
	if h, ok := tok.Payload.(matcher.Header); ok {
		return h.Header
	}
	return strings.TrimSpace(tok.Image)
}

func unexpected(n any, where string) error {
	return fmt.Errorf("%s: %T: %w", where, n, domain.ErrUnexpectedNode)
}

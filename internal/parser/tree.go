package parser

import "github.com/hammamikhairi/recipeparse/internal/lexer"

// Node is a node of the concrete syntax tree. The set of node types is
// closed: Sections, IngredientsBlock, StepsBlock, Section,
// IngredientItem, StepItem, Amount and IngredientName.
type Node interface {
	node()
}

// Sections is the root of a whole recipe: one block per banner, in
// source order.
type Sections struct {
	Blocks []Node // *IngredientsBlock or *StepsBlock
}

// IngredientsBlock is a run of ingredient entries. Banner is nil when
// parsing started at the ingredients rule.
type IngredientsBlock struct {
	Banner  *lexer.Token
	Entries []Node // *Section or *IngredientItem
}

// StepsBlock is a run of step entries. Banner is nil when parsing started
// at the steps rule.
type StepsBlock struct {
	Banner  *lexer.Token
	Entries []Node // *Section or *StepItem
}

// Section is a header and the items under it. Items are all
// *IngredientItem or all *StepItem.
type Section struct {
	Header lexer.Token
	Items  []Node
}

// IngredientItem is one ingredient line.
type IngredientItem struct {
	ListItem *lexer.Token
	Amount   *Amount
	Name     *IngredientName
}

// StepItem is one step.
type StepItem struct {
	ListItem *lexer.Token
	Text     lexer.Token
}

// Amount wraps the amount token of an ingredient.
type Amount struct {
	Token lexer.Token
}

// IngredientName holds the words naming an ingredient.
type IngredientName struct {
	Words []lexer.Token
}

func (*Sections) node()         {}
func (*IngredientsBlock) node() {}
func (*StepsBlock) node()       {}
func (*Section) node()          {}
func (*IngredientItem) node()   {}
func (*StepItem) node()         {}
func (*Amount) node()           {}
func (*IngredientName) node()   {}

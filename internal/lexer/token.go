package lexer

import "fmt"

// Kind identifies what a token is.
type Kind int

const (
	KindIngredientsBanner Kind = iota
	KindStepsBanner
	KindSectionHeader
	KindListItemID
	KindAmount
	KindQuantity
	KindUnit
	KindWord
	KindStepText
)

var kindNames = map[Kind]string{
	KindIngredientsBanner: "IngredientsBanner",
	KindStepsBanner:       "StepsBanner",
	KindSectionHeader:     "SectionHeader",
	KindListItemID:        "ListItemID",
	KindAmount:            "Amount",
	KindQuantity:          "Quantity",
	KindUnit:              "Unit",
	KindWord:              "Word",
	KindStepText:          "StepText",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one recognized piece of the input. Offset is a byte offset;
// Line and Column are 1-based, Column counting runes.
type Token struct {
	Kind    Kind
	Image   string
	Offset  int
	Line    int
	Column  int
	Payload any
}

// Error records one character the lexer could not match and skipped.
type Error struct {
	Offset  int
	Line    int
	Column  int
	Length  int
	Message string
}

func (e Error) Error() string { return e.Message }

func newError(char rune, offset, line, column int) Error {
	const length = 1
	return Error{
		Offset:  offset,
		Line:    line,
		Column:  column,
		Length:  length,
		Message: fmt.Sprintf("unexpected character: ->%c<- at offset: %d, skipped %d characters.", char, offset, length),
	}
}

// Result is the outcome of lexing one text.
type Result struct {
	Tokens []Token
	Errors []Error
	// Mode is the mode the lexer ended in.
	Mode Mode
}

package parser

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipeparse/internal/lexer"
)

// Error is a grammar violation. The parser records it, resynchronizes,
// and keeps going.
type Error struct {
	Offset  int
	Line    int
	Column  int
	Message string
	// Context names the rule being parsed, e.g. "ingredient item".
	Context  string
	Expected []lexer.Kind
	// Got is the offending token's kind; AtEnd is set instead when the
	// input ran out.
	Got   lexer.Kind
	AtEnd bool
}

func (e Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func describeExpected(kinds []lexer.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}

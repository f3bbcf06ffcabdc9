// Package lexer turns recipe text into tokens.
//
// The lexer is a small state machine with three modes. In recipe mode it
// only looks for the "Ingredients" and "Steps" banners; a banner switches
// it into the matching block mode, and the other block's banner switches
// it back out. Whitespace is skipped in every mode.
//
// Lexing never fails. A character that no rule of the current mode
// matches is recorded as an Error and skipped, and lexing continues.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hammamikhairi/recipeparse/internal/logger"
	"github.com/hammamikhairi/recipeparse/internal/units"
)

// Lexer holds configuration and the current mode. It can be reused for
// many texts, one at a time; it is not safe for concurrent use.
type Lexer struct {
	start       Mode
	mode        Mode
	rules       map[Mode][]rule
	catalog     *units.Catalog
	log         *logger.Logger
	logWarnings bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithStartMode sets the mode each Lex call starts in. The default is
// ModeRecipe.
func WithStartMode(m Mode) Option {
	return func(l *Lexer) { l.start = m }
}

// WithLogger sets the logger for debug and warning output.
func WithLogger(log *logger.Logger) Option {
	return func(l *Lexer) { l.log = log }
}

// WithLogWarnings makes Lex log a warning listing the lexing errors.
func WithLogWarnings(on bool) Option {
	return func(l *Lexer) { l.logWarnings = on }
}

// WithCatalog sets the unit catalog. The default is units.Default().
func WithCatalog(c *units.Catalog) Option {
	return func(l *Lexer) { l.catalog = c }
}

// New creates a lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{start: ModeRecipe}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Nop()
	}
	if l.catalog == nil {
		l.catalog = units.Default()
	}
	l.rules = rulesFor(l.catalog)
	l.mode = l.start
	return l
}

// Mode returns the mode the lexer is currently in.
func (l *Lexer) Mode() Mode { return l.mode }

type cursor struct {
	text   string
	offset int
	line   int
	column int
}

func (c *cursor) advance(n int) {
	for _, r := range c.text[c.offset : c.offset+n] {
		if r == '\n' {
			c.line++
			c.column = 1
		} else {
			c.column++
		}
	}
	c.offset += n
}

// Lex tokenizes text, starting over in the start mode.
func (l *Lexer) Lex(text string) Result {
	l.mode = l.start
	var res Result
	cur := cursor{text: text, line: 1, column: 1}

	for cur.offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[cur.offset:])
		if unicode.IsSpace(r) {
			cur.advance(size)
			continue
		}

		tok, ok := l.next(text, cur)
		if !ok {
			res.Errors = append(res.Errors, newError(r, cur.offset, cur.line, cur.column))
			cur.advance(size)
			continue
		}
		res.Tokens = append(res.Tokens, tok)
		cur.advance(len(tok.Image))

		if next, ok := transitions[l.mode][tok.Kind]; ok {
			l.log.Debug("lexer: %s at %d:%d, mode %s -> %s", tok.Kind, tok.Line, tok.Column, l.mode, next)
			l.mode = next
		}
	}

	res.Mode = l.mode
	if l.logWarnings && len(res.Errors) > 0 {
		msgs := make([]string, len(res.Errors))
		for i, e := range res.Errors {
			msgs[i] = e.Message
		}
		l.log.Warn("failed lexing with errors: %s", strings.Join(msgs, ";"))
	}
	return res
}

func (l *Lexer) next(text string, cur cursor) (Token, bool) {
	for _, rl := range l.rules[l.mode] {
		m, ok := rl.match.Match(text, cur.offset)
		if !ok || m.Image == "" {
			continue
		}
		return Token{
			Kind:    rl.kind,
			Image:   m.Image,
			Offset:  cur.offset,
			Line:    cur.line,
			Column:  cur.column,
			Payload: m.Payload,
		}, true
	}
	return Token{}, false
}

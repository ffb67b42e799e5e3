package kicadsexp

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLeftParen
	TokenRightParen
	TokenSymbol
	TokenString
)

// Token represents a lexical token. For TokenString the Value keeps the
// surrounding quote characters and any escape sequences verbatim; use
// Unquote to recover the string content.
type Token struct {
	Type  TokenType
	Value string
}

// Lexer tokenizes S-expressions from an io.Reader. It is total: any byte
// sequence yields a token stream, never a syntax error. The only errors
// reported are I/O errors from the underlying reader.
type Lexer struct {
	reader *bufio.Reader
	peeked *rune
}

// NewLexer creates a new lexer
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
	}
}

// NextToken reads the next token from the input
func (l *Lexer) NextToken() (Token, error) {
	// Skip whitespace
	for {
		ch, err := l.peek()
		if err != nil {
			if err == io.EOF {
				return Token{Type: TokenEOF}, nil
			}
			return Token{}, err
		}
		if !unicode.IsSpace(ch) {
			break
		}
		l.read()
	}

	ch, err := l.peek()
	if err != nil {
		if err == io.EOF {
			return Token{Type: TokenEOF}, nil
		}
		return Token{}, err
	}

	switch ch {
	case '(':
		l.read()
		return Token{Type: TokenLeftParen, Value: "("}, nil

	case ')':
		l.read()
		return Token{Type: TokenRightParen, Value: ")"}, nil

	case '"':
		return l.readString()

	default:
		return l.readSymbol()
	}
}

// peek looks at the next rune without consuming it
func (l *Lexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}

	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	l.peeked = &ch
	return ch, nil
}

// read consumes and returns the next rune
func (l *Lexer) read() (rune, error) {
	if l.peeked != nil {
		ch := *l.peeked
		l.peeked = nil
		return ch, nil
	}

	ch, _, err := l.reader.ReadRune()
	return ch, err
}

// readString reads a quoted string token, quotes and escapes included.
// A backslash consumes the following character, so \" and \\ do not end
// the string early. An unterminated string extends to end of input.
func (l *Lexer) readString() (Token, error) {
	var result []rune

	// Opening quote
	ch, _ := l.read()
	result = append(result, ch)

	for {
		ch, err := l.read()
		if err != nil {
			// Unterminated string: keep what we have
			break
		}
		result = append(result, ch)

		if ch == '\\' {
			next, err := l.read()
			if err != nil {
				break
			}
			result = append(result, next)
			continue
		}

		if ch == '"' {
			break
		}
	}

	return Token{Type: TokenString, Value: string(result)}, nil
}

// readSymbol reads an unquoted atom (identifier, number, etc.) running
// until whitespace, a parenthesis, or a quote character.
func (l *Lexer) readSymbol() (Token, error) {
	var result []rune

	for {
		ch, err := l.peek()
		if err != nil {
			break
		}

		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}

		l.read()
		result = append(result, ch)
	}

	return Token{Type: TokenSymbol, Value: string(result)}, nil
}

// Unquote strips the surrounding quotes from a TokenString value and
// resolves the \" and \\ escape sequences. Any other backslash pair is
// passed through verbatim, matching what KiCad writes.
func Unquote(raw string) string {
	s := strings.TrimPrefix(raw, "\"")
	s = strings.TrimSuffix(s, "\"")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

package kicadsexp

import (
	"io"
)

// Parser parses S-expressions from a lexer
type Parser struct {
	lexer *Lexer
}

// NewParser creates a new parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// ParseAll parses all top-level S-expressions from the input.
// A closing paren with no matching open is skipped as a no-op, and a
// list left open at EOF yields whatever elements were collected, so
// parsing succeeds for any input.
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp

	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return result, err
		}

		switch tok.Type {
		case TokenEOF:
			return result, nil

		case TokenRightParen:
			// Unmatched ')': ignore and continue

		case TokenLeftParen:
			list, err := p.parseList()
			if err != nil {
				return result, err
			}
			result = append(result, list)

		case TokenString:
			result = append(result, Symbol(Unquote(tok.Value)))

		default:
			result = append(result, Symbol(tok.Value))
		}
	}
}

// parseList parses list elements after a consumed '(' until the matching
// ')' or EOF. The closing paren is consumed and not included.
func (p *Parser) parseList() (Sexp, error) {
	var elements []Sexp

	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return &List{elements: elements}, err
		}

		switch tok.Type {
		case TokenRightParen:
			return &List{elements: elements}, nil

		case TokenEOF:
			// Truncated input: close the list here
			return &List{elements: elements}, nil

		case TokenLeftParen:
			sub, err := p.parseList()
			if err != nil {
				return &List{elements: elements}, err
			}
			elements = append(elements, sub)

		case TokenString:
			elements = append(elements, Symbol(Unquote(tok.Value)))

		default:
			elements = append(elements, Symbol(tok.Value))
		}
	}
}

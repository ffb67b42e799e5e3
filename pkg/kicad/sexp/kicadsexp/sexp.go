// Package kicadsexp provides a lightweight streaming S-expression parser
// for KiCad netlist and schematic files. The lexer and parser are total:
// malformed input (stray closing parens, unterminated strings, truncated
// lists) degrades to a partial tree instead of failing, because callers
// rely on best-effort results when schematic sections are absent.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp represents an S-expression node.
// It is either a leaf (atom) or a list of child nodes.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// Head returns the first element of a list (nil for atoms, self for leaves)
	Head() Sexp

	// Tail returns the rest of the list after the first element (nil for atoms)
	Tail() Sexp

	// String returns the string representation
	String() string
}

// Symbol represents an atomic value (identifier, number, or the unquoted
// content of a quoted string).
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// List represents an ordered list of S-expressions. The first element,
// when it is a Symbol, is conventionally the element's tag.
type List struct {
	elements []Sexp
}

// NewList builds a list node from the given elements. Useful for
// constructing trees by hand in tests.
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

func (l *List) IsLeaf() bool { return false }

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Get returns the element at the given index, or nil if out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elements)
}

// Items returns the ordered elements of the list.
func (l *List) Items() []Sexp {
	return l.elements
}

// Parse parses all top-level S-expressions from an io.Reader.
// The only errors returned are I/O errors from the reader itself;
// malformed input never fails.
func Parse(r io.Reader) ([]Sexp, error) {
	parser := NewParser(r)
	return parser.ParseAll()
}

// ParseString parses a string and returns the first top-level
// S-expression, or nil if the input holds none (empty or all
// whitespace). KiCad files have a single root element, so this is the
// entry point the query layers use.
func ParseString(s string) Sexp {
	sexps, _ := Parse(strings.NewReader(s))
	if len(sexps) == 0 {
		return nil
	}
	return sexps[0]
}

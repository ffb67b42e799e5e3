package kicadsexp

import (
	"strings"
	"testing"
)

func TestParseSimpleList(t *testing.T) {
	root := ParseString(`(net (name "GND") (node (ref "R1") (pin "1")))`)

	list, ok := root.(*List)
	if !ok {
		t.Fatalf("Expected list root, got %T", root)
	}
	if list.Len() != 3 {
		t.Fatalf("Expected 3 elements, got %d", list.Len())
	}
	if sym, ok := list.Get(0).(Symbol); !ok || string(sym) != "net" {
		t.Errorf("Expected tag 'net', got %v", list.Get(0))
	}

	name, ok := list.Get(1).(*List)
	if !ok {
		t.Fatalf("Expected (name ...) list, got %T", list.Get(1))
	}
	if sym, ok := name.Get(1).(Symbol); !ok || string(sym) != "GND" {
		t.Errorf("Expected quoted string unwrapped to 'GND', got %v", name.Get(1))
	}
}

func TestParseEmptyInput(t *testing.T) {
	if root := ParseString(""); root != nil {
		t.Errorf("Expected nil tree for empty input, got %v", root)
	}
	if root := ParseString("   \n\t  "); root != nil {
		t.Errorf("Expected nil tree for whitespace input, got %v", root)
	}
}

func TestParseStrayClosingParen(t *testing.T) {
	// Unmatched ')' tokens are no-ops, before and between expressions
	root := ParseString(`) ) (a b) )`)

	list, ok := root.(*List)
	if !ok {
		t.Fatalf("Expected list, got %T", root)
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 elements, got %d", list.Len())
	}
}

func TestParseTruncatedList(t *testing.T) {
	// EOF inside an open list yields the elements collected so far
	root := ParseString(`(outer (inner a b`)

	outer, ok := root.(*List)
	if !ok {
		t.Fatalf("Expected list, got %T", root)
	}
	if outer.Len() != 2 {
		t.Fatalf("Expected 2 elements, got %d", outer.Len())
	}

	inner, ok := outer.Get(1).(*List)
	if !ok {
		t.Fatalf("Expected inner list, got %T", outer.Get(1))
	}
	if inner.Len() != 3 {
		t.Errorf("Expected 3 elements in inner list, got %d", inner.Len())
	}
}

func TestParseAllTopLevel(t *testing.T) {
	sexps, err := Parse(strings.NewReader(`(a) (b) atom`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sexps) != 3 {
		t.Fatalf("Expected 3 top-level expressions, got %d", len(sexps))
	}
	if sym, ok := sexps[2].(Symbol); !ok || string(sym) != "atom" {
		t.Errorf("Expected bare atom, got %v", sexps[2])
	}
}

func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		`)`,
		`(((`,
		`(a))(`,
		`"unterminated`,
		`(mixed "quo\te" (deep (deeper`,
		`))))((((`,
	}

	for _, input := range inputs {
		if _, err := Parse(strings.NewReader(input)); err != nil {
			t.Errorf("Parse(%q) returned error: %v", input, err)
		}
	}
}

func TestListString(t *testing.T) {
	root := ParseString(`(a (b c) d)`)
	if got := root.String(); got != "(a (b c) d)" {
		t.Errorf("Expected '(a (b c) d)', got %q", got)
	}
}

func TestHeadTail(t *testing.T) {
	root := ParseString(`(a b c)`)

	head := root.Head()
	if sym, ok := head.(Symbol); !ok || string(sym) != "a" {
		t.Errorf("Expected head 'a', got %v", head)
	}

	tail, ok := root.Tail().(*List)
	if !ok || tail.Len() != 2 {
		t.Errorf("Expected 2-element tail, got %v", root.Tail())
	}

	if Symbol("x").Tail() != nil {
		t.Error("Expected nil tail for atom")
	}
}

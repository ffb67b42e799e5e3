// Package sexp provides navigation and extraction helpers over the
// generic S-expression trees produced by the kicadsexp parser. The
// helpers are shared by the netlist and schematic query layers.
package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

// FindElements collects every list node whose first element is an atom
// equal to tag, in depth-first pre-order (document order). A match does
// not stop descent: nested occurrences inside matched nodes are
// collected too.
func FindElements(s kicadsexp.Sexp, tag string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	collectElements(s, tag, &results)
	return results
}

func collectElements(s kicadsexp.Sexp, tag string, results *[]kicadsexp.Sexp) {
	list, ok := s.(*kicadsexp.List)
	if !ok || list.Len() == 0 {
		return
	}

	if sym, ok := list.Get(0).(kicadsexp.Symbol); ok && string(sym) == tag {
		*results = append(*results, list)
	}

	for _, item := range list.Items() {
		collectElements(item, tag, results)
	}
}

// GetNamedValue scans the direct children of a list node for a child
// list whose first element equals key, and returns that child's second
// element as a string. Only the first match counts.
// Example: GetNamedValue((node (ref "R1") (pin "1")), "ref") == "R1".
func GetNamedValue(s kicadsexp.Sexp, key string) (string, bool) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return "", false
	}

	for _, item := range list.Items() {
		sub, ok := item.(*kicadsexp.List)
		if !ok || sub.Len() < 2 {
			continue
		}
		if sym, ok := sub.Get(0).(kicadsexp.Symbol); ok && string(sym) == key {
			return sub.Get(1).String(), true
		}
	}

	return "", false
}

// FindNode returns the first direct child list whose first element
// equals key, like GetNamedValue but giving access to the whole node.
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return nil, false
	}

	for _, item := range list.Items() {
		sub, ok := item.(*kicadsexp.List)
		if !ok || sub.Len() == 0 {
			continue
		}
		if sym, ok := sub.Get(0).(kicadsexp.Symbol); ok && string(sym) == key {
			return sub, true
		}
	}

	return nil, false
}

// GetNodeName returns the tag of a list node (its first element, which
// must be an atom).
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}
	if sym, ok := list.Get(0).(kicadsexp.Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("list does not start with an atom")
}

// GetString extracts the atom value at the given index in a list.
// Index 0 is the tag, 1 is the first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	list, ok := s.(*kicadsexp.List)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}

	item := list.Get(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, list.Len())
	}

	if sym, ok := item.(kicadsexp.Symbol); ok {
		return string(sym), nil
	}

	return "", fmt.Errorf("expected atom at index %d, got list", index)
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

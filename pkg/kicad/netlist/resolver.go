package netlist

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

// NotFoundError reports a reference designator or net name that does
// not exist in the netlist.
type NotFoundError struct {
	Kind string // "component" or "net"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found in project", e.Kind, e.Name)
}

// AmbiguousMatchError reports a net-name query that matched more than
// one net case-insensitively. Matches is sorted; the caller should
// re-query with one of the exact names.
type AmbiguousMatchError struct {
	Query   string
	Matches []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("net name %q is ambiguous, matches: %s",
		e.Query, strings.Join(e.Matches, ", "))
}

// QueryByReference lists every pin of the given component with the net
// it connects to, sorted by pin number (numeric pins first, ascending,
// then the rest lexicographically).
func QueryByReference(root kicadsexp.Sexp, ref string) (*ComponentPins, error) {
	refs := ComponentRefs(root)
	if _, ok := refs[ref]; !ok {
		return nil, &NotFoundError{Kind: "component", Name: ref}
	}

	index := BuildPinNetIndex(root)

	pins := make([]PinConnection, 0)
	for key, info := range index {
		if key.Ref == ref {
			pins = append(pins, PinConnection{
				PinNumber: key.Pin,
				PinName:   info.PinFunction,
				Net:       info.Net,
			})
		}
	}

	sort.Slice(pins, func(i, j int) bool {
		return lessPinNumber(pins[i].PinNumber, pins[j].PinNumber)
	})

	return &ComponentPins{Reference: ref, Pins: pins}, nil
}

// QueryByNet lists every pin connected to the given net, sorted by
// component reference (natural order: C1 before C10 before R1) and pin
// number. An exact net name wins outright; otherwise the lookup falls
// back to case-insensitive substring matching and reports ambiguity
// when more than one net matches.
func QueryByNet(root kicadsexp.Sexp, name string) (*NetConnections, error) {
	index := BuildNetPinIndex(root)

	resolved := name
	pins, ok := index[name]
	if !ok {
		matches := matchNetNames(index, name)
		switch len(matches) {
		case 0:
			return nil, &NotFoundError{Kind: "net", Name: name}
		case 1:
			resolved = matches[0]
			pins = index[resolved]
		default:
			return nil, &AmbiguousMatchError{Query: name, Matches: matches}
		}
	}

	sorted := make([]NetPin, len(pins))
	copy(sorted, pins)
	sort.Slice(sorted, func(i, j int) bool {
		return lessNetPin(sorted[i], sorted[j])
	})

	return &NetConnections{Net: resolved, Pins: sorted}, nil
}

// matchNetNames collects the nets whose lowercase name equals or
// contains the lowercase query, sorted.
func matchNetNames(index map[string][]NetPin, query string) []string {
	q := strings.ToLower(query)

	var matches []string
	for net := range index {
		if strings.Contains(strings.ToLower(net), q) {
			matches = append(matches, net)
		}
	}

	sort.Strings(matches)
	return matches
}

// lessPinNumber orders pin numbers with numeric pins first in numeric
// order, then non-numeric pins lexicographically. Numeric ties (e.g.
// "01" vs "1") fall back to the raw string.
func lessPinNumber(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	}
	return a < b
}

// lessNetPin orders net members by the alphabetic prefix of the
// reference, then its numeric part, then the raw pin number, so C1
// sorts before C10 which sorts before R1.
func lessNetPin(a, b NetPin) bool {
	aPrefix, aNum := splitReference(a.Reference)
	bPrefix, bNum := splitReference(b.Reference)

	if aPrefix != bPrefix {
		return aPrefix < bPrefix
	}
	if aNum != bNum {
		return aNum < bNum
	}
	return a.PinNumber < b.PinNumber
}

// splitReference splits a reference designator into its leading letters
// and the integer formed by its remaining digits ("C10" -> "C", 10).
// A reference with no digits gets 0.
func splitReference(ref string) (string, int) {
	i := 0
	for i < len(ref) && unicode.IsLetter(rune(ref[i])) {
		i++
	}
	prefix := ref[:i]

	var digits strings.Builder
	for _, r := range ref[i:] {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	num, err := strconv.Atoi(digits.String())
	if err != nil {
		num = 0
	}

	return prefix, num
}

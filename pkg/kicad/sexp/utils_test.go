package sexp

import (
	"testing"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

func TestFindElementsDocumentOrder(t *testing.T) {
	root := kicadsexp.ParseString(`
		(export
			(nets
				(net (name "GND"))
				(net (name "VCC"))
			)
		)`)

	nets := FindElements(root, "net")
	if len(nets) != 2 {
		t.Fatalf("Expected 2 net elements, got %d", len(nets))
	}

	first, _ := GetNamedValue(nets[0], "name")
	second, _ := GetNamedValue(nets[1], "name")
	if first != "GND" || second != "VCC" {
		t.Errorf("Expected document order GND, VCC; got %s, %s", first, second)
	}
}

func TestFindElementsDescendsIntoMatches(t *testing.T) {
	// A matched node does not stop descent into its own children
	root := kicadsexp.ParseString(`(group (group (group a)))`)

	groups := FindElements(root, "group")
	if len(groups) != 3 {
		t.Errorf("Expected 3 nested matches, got %d", len(groups))
	}
}

func TestFindElementsNoMatch(t *testing.T) {
	root := kicadsexp.ParseString(`(a (b c))`)

	if matches := FindElements(root, "missing"); len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
	if matches := FindElements(kicadsexp.Symbol("atom"), "atom"); len(matches) != 0 {
		t.Errorf("Expected no matches on a bare atom, got %d", len(matches))
	}
}

func TestGetNamedValue(t *testing.T) {
	node := kicadsexp.ParseString(`(node (ref "R1") (pin "1") (pinfunction "A"))`)

	ref, ok := GetNamedValue(node, "ref")
	if !ok || ref != "R1" {
		t.Errorf("Expected ref R1, got %q (ok=%v)", ref, ok)
	}

	if _, ok := GetNamedValue(node, "missing"); ok {
		t.Error("Expected missing key to report not found")
	}
}

func TestGetNamedValueFirstMatchWins(t *testing.T) {
	node := kicadsexp.ParseString(`(node (ref "R1") (ref "R2"))`)

	ref, ok := GetNamedValue(node, "ref")
	if !ok || ref != "R1" {
		t.Errorf("Expected first match R1, got %q", ref)
	}
}

func TestFindNode(t *testing.T) {
	root := kicadsexp.ParseString(`(symbol (lib_id "Device:R") (at 100 50))`)

	node, found := FindNode(root, "lib_id")
	if !found {
		t.Fatal("Expected to find lib_id node")
	}
	value, err := GetString(node, 1)
	if err != nil || value != "Device:R" {
		t.Errorf("Expected Device:R, got %q (err=%v)", value, err)
	}

	if _, found := FindNode(root, "missing"); found {
		t.Error("Expected missing key to report not found")
	}
}

func TestGetNodeName(t *testing.T) {
	root := kicadsexp.ParseString(`(kicad_sch (version 20231120))`)

	name, err := GetNodeName(root)
	if err != nil {
		t.Fatalf("GetNodeName failed: %v", err)
	}
	if name != "kicad_sch" {
		t.Errorf("Expected kicad_sch, got %q", name)
	}

	if _, err := GetNodeName(kicadsexp.Symbol("atom")); err == nil {
		t.Error("Expected error for leaf node")
	}
}

func TestGetStringAndGetInt(t *testing.T) {
	node := kicadsexp.ParseString(`(version 20231120)`)

	if v, err := GetString(node, 0); err != nil || v != "version" {
		t.Errorf("GetString(0): got %q, err %v", v, err)
	}
	if v, err := GetInt(node, 1); err != nil || v != 20231120 {
		t.Errorf("GetInt(1): got %d, err %v", v, err)
	}
	if _, err := GetString(node, 5); err == nil {
		t.Error("Expected out-of-bounds error")
	}
	if _, err := GetInt(node, 0); err == nil {
		t.Error("Expected parse error for non-numeric atom")
	}
}

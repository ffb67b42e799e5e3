package netlist

import (
	"testing"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

// A trimmed-down kicad-cli netlist export used across the index tests.
const sampleNetlist = `
(export (version "E")
  (components
    (comp (ref "R1") (value "10k"))
    (comp (ref "C1") (value "100n"))
    (comp (ref "C10") (value "1u"))
    (comp (ref "U1") (value "MCU"))
  )
  (nets
    (net (code "1") (name "GND")
      (node (ref "R1") (pin "1") (pinfunction "A"))
      (node (ref "C10") (pin "2"))
      (node (ref "C1") (pin "2"))
    )
    (net (code "2") (name "SCL")
      (node (ref "U1") (pin "10") (pinfunction "PB6"))
      (node (ref "R1") (pin "2") (pinfunction "B"))
    )
    (net (code "3") (name "SCL2")
      (node (ref "U1") (pin "2") (pinfunction "PB7"))
    )
    (net (code "4") (name "unconnected-1"))
  )
)`

func TestBuildPinNetIndex(t *testing.T) {
	root := kicadsexp.ParseString(sampleNetlist)
	index := BuildPinNetIndex(root)

	if len(index) != 6 {
		t.Fatalf("Expected 6 indexed pins, got %d", len(index))
	}

	info, ok := index[PinKey{Ref: "R1", Pin: "1"}]
	if !ok {
		t.Fatal("Expected (R1, 1) in index")
	}
	if info.PinFunction != "A" || info.Net != "GND" {
		t.Errorf("Expected (A, GND), got (%s, %s)", info.PinFunction, info.Net)
	}

	// pinfunction is optional and defaults to empty
	info, ok = index[PinKey{Ref: "C10", Pin: "2"}]
	if !ok {
		t.Fatal("Expected (C10, 2) in index")
	}
	if info.PinFunction != "" {
		t.Errorf("Expected empty pin function, got %q", info.PinFunction)
	}
}

func TestBuildPinNetIndexNoNetsSection(t *testing.T) {
	root := kicadsexp.ParseString(`(export (components (comp (ref "R1"))))`)

	if index := BuildPinNetIndex(root); len(index) != 0 {
		t.Errorf("Expected empty index without nets section, got %d entries", len(index))
	}
	if index := BuildPinNetIndex(nil); len(index) != 0 {
		t.Errorf("Expected empty index for nil tree, got %d entries", len(index))
	}
}

func TestBuildPinNetIndexLastWriteWins(t *testing.T) {
	root := kicadsexp.ParseString(`
		(export (nets
			(net (name "A") (node (ref "R1") (pin "1")))
			(net (name "B") (node (ref "R1") (pin "1")))
		))`)

	index := BuildPinNetIndex(root)
	if len(index) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(index))
	}
	if info := index[PinKey{Ref: "R1", Pin: "1"}]; info.Net != "B" {
		t.Errorf("Expected later occurrence to win, got net %q", info.Net)
	}
}

func TestBuildPinNetIndexSkipsIncompleteNodes(t *testing.T) {
	root := kicadsexp.ParseString(`
		(export (nets (net (name "X")
			(node (ref "R1"))
			(node (pin "3"))
			(node (ref "R2") (pin "1"))
		)))`)

	index := BuildPinNetIndex(root)
	if len(index) != 1 {
		t.Fatalf("Expected only the complete node indexed, got %d entries", len(index))
	}
	if _, ok := index[PinKey{Ref: "R2", Pin: "1"}]; !ok {
		t.Error("Expected (R2, 1) in index")
	}
}

func TestBuildNetPinIndex(t *testing.T) {
	root := kicadsexp.ParseString(sampleNetlist)
	index := BuildNetPinIndex(root)

	if len(index) != 3 {
		t.Fatalf("Expected 3 nets, got %d", len(index))
	}

	// Pinless nets are omitted entirely
	if _, ok := index["unconnected-1"]; ok {
		t.Error("Expected pinless net to be omitted")
	}

	gnd := index["GND"]
	if len(gnd) != 3 {
		t.Fatalf("Expected 3 pins on GND, got %d", len(gnd))
	}

	// Document order is preserved
	if gnd[0].Reference != "R1" || gnd[1].Reference != "C10" || gnd[2].Reference != "C1" {
		t.Errorf("Expected document order R1, C10, C1; got %s, %s, %s",
			gnd[0].Reference, gnd[1].Reference, gnd[2].Reference)
	}
	if gnd[0].PinName != "A" {
		t.Errorf("Expected pin name A, got %q", gnd[0].PinName)
	}
}

func TestComponentRefs(t *testing.T) {
	root := kicadsexp.ParseString(sampleNetlist)
	refs := ComponentRefs(root)

	if len(refs) != 4 {
		t.Fatalf("Expected 4 refs, got %d", len(refs))
	}
	for _, want := range []string{"R1", "C1", "C10", "U1"} {
		if _, ok := refs[want]; !ok {
			t.Errorf("Expected ref %s in set", want)
		}
	}
}

func TestComponentRefsDuplicatesCollapse(t *testing.T) {
	root := kicadsexp.ParseString(`
		(export (components
			(comp (ref "R1"))
			(comp (ref "R1"))
		))`)

	if refs := ComponentRefs(root); len(refs) != 1 {
		t.Errorf("Expected duplicates to collapse, got %d refs", len(refs))
	}
}

func TestRoundTrip(t *testing.T) {
	// Parse, index, and look up in one pass over a minimal net
	root := kicadsexp.ParseString(`(nets (net (name "GND") (node (ref "R1") (pin "1") (pinfunction "A"))))`)

	index := BuildPinNetIndex(root)
	info, ok := index[PinKey{Ref: "R1", Pin: "1"}]
	if !ok {
		t.Fatal("Expected (R1, 1) in index")
	}
	if info.PinFunction != "A" || info.Net != "GND" {
		t.Errorf("Expected (A, GND), got (%s, %s)", info.PinFunction, info.Net)
	}
}

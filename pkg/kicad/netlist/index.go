package netlist

import (
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp"
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

// BuildPinNetIndex walks a parsed netlist tree and maps every
// (ref, pin) pair to its pin function and net name. Only nodes carrying
// both a ref and a pin are indexed; if the netlist lists the same pin
// twice the later occurrence wins. A tree without a nets section yields
// an empty index.
func BuildPinNetIndex(root kicadsexp.Sexp) map[PinKey]PinInfo {
	index := make(map[PinKey]PinInfo)
	if root == nil {
		return index
	}

	netsSections := sexp.FindElements(root, "nets")
	if len(netsSections) == 0 {
		return index
	}

	for _, net := range sexp.FindElements(netsSections[0], "net") {
		netName, _ := sexp.GetNamedValue(net, "name")

		for _, node := range sexp.FindElements(net, "node") {
			ref, refOK := sexp.GetNamedValue(node, "ref")
			pin, pinOK := sexp.GetNamedValue(node, "pin")
			pinFunction, _ := sexp.GetNamedValue(node, "pinfunction")

			if refOK && ref != "" && pinOK && pin != "" {
				index[PinKey{Ref: ref, Pin: pin}] = PinInfo{
					PinFunction: pinFunction,
					Net:         netName,
				}
			}
		}
	}

	return index
}

// BuildNetPinIndex is the inverted walk: net name to the ordered pins
// connected to it (document order). Nets that end up with no indexable
// pins are omitted entirely.
func BuildNetPinIndex(root kicadsexp.Sexp) map[string][]NetPin {
	index := make(map[string][]NetPin)
	if root == nil {
		return index
	}

	netsSections := sexp.FindElements(root, "nets")
	if len(netsSections) == 0 {
		return index
	}

	for _, net := range sexp.FindElements(netsSections[0], "net") {
		netName, _ := sexp.GetNamedValue(net, "name")

		var pins []NetPin
		for _, node := range sexp.FindElements(net, "node") {
			ref, refOK := sexp.GetNamedValue(node, "ref")
			pin, pinOK := sexp.GetNamedValue(node, "pin")
			pinFunction, _ := sexp.GetNamedValue(node, "pinfunction")

			if refOK && ref != "" && pinOK && pin != "" {
				pins = append(pins, NetPin{
					Reference: ref,
					PinNumber: pin,
					PinName:   pinFunction,
				})
			}
		}

		if len(pins) > 0 {
			index[netName] = append(index[netName], pins...)
		}
	}

	return index
}

// ComponentRefs collects the reference designators of every comp
// element in the components section. Duplicates collapse.
func ComponentRefs(root kicadsexp.Sexp) map[string]struct{} {
	refs := make(map[string]struct{})
	if root == nil {
		return refs
	}

	componentsSections := sexp.FindElements(root, "components")
	if len(componentsSections) == 0 {
		return refs
	}

	for _, comp := range sexp.FindElements(componentsSections[0], "comp") {
		if ref, ok := sexp.GetNamedValue(comp, "ref"); ok && ref != "" {
			refs[ref] = struct{}{}
		}
	}

	return refs
}

package schematic

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/netlist"
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp"
	"github.com/OpenTraceLab/kicad-tools/pkg/kicad/sexp/kicadsexp"
)

// ComponentProperties holds everything a schematic records about a
// placed symbol: its library identifier, instance UUID, and the
// property name/value pairs (Reference, Value, Footprint, ...).
type ComponentProperties struct {
	LibID      string            `json:"lib_id,omitempty"`
	UUID       string            `json:"uuid,omitempty"`
	Properties map[string]string `json:"properties"`
	SourceFile string            `json:"source_file,omitempty"`
}

// SymbolProperties extracts the properties of a single symbol element.
func SymbolProperties(symbol kicadsexp.Sexp) *ComponentProperties {
	props := &ComponentProperties{
		Properties: make(map[string]string),
	}

	if libID, ok := sexp.GetNamedValue(symbol, "lib_id"); ok {
		props.LibID = libID
	}

	if raw, ok := sexp.GetNamedValue(symbol, "uuid"); ok {
		// Canonicalize well-formed UUIDs, keep anything else verbatim
		if u, err := uuid.Parse(raw); err == nil {
			props.UUID = u.String()
		} else {
			props.UUID = raw
		}
	}

	// Property elements are positional: (property "Name" "Value" ...)
	for _, prop := range sexp.FindElements(symbol, "property") {
		name, nameErr := sexp.GetString(prop, 1)
		value, valueErr := sexp.GetString(prop, 2)
		if nameErr == nil && valueErr == nil && name != "" {
			props.Properties[name] = value
		}
	}

	return props
}

// FindComponentByRef searches every schematic file in a project for the
// symbol whose Reference property equals ref. The first match wins;
// unreadable files are skipped with a warning on stderr.
func FindComponentByRef(projectDir, ref string) (*ComponentProperties, error) {
	files, err := FindSchematicFiles(projectDir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", file, err)
			continue
		}

		root := kicadsexp.ParseString(string(content))
		if root == nil {
			continue
		}

		for _, symbol := range sexp.FindElements(root, "symbol") {
			props := SymbolProperties(symbol)
			if props.Properties["Reference"] == ref {
				props.SourceFile = file
				return props, nil
			}
		}
	}

	return nil, &netlist.NotFoundError{Kind: "component", Name: ref}
}

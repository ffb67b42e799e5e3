// Package netlist builds pin/net lookup indexes from a parsed KiCad
// netlist tree and resolves component and net queries against them.
// Indexes are derived views computed fresh from the tree for each query;
// nothing is cached across calls.
package netlist

// PinKey identifies a single component pin: a reference designator
// paired with a pin identifier. Pin numbers are opaque strings and may
// be non-numeric (e.g. "A1" on a BGA).
type PinKey struct {
	Ref string
	Pin string
}

// PinInfo holds what the netlist knows about an indexed pin.
type PinInfo struct {
	PinFunction string // pin function name, empty when the netlist omits it
	Net         string // net name, empty when the net is unnamed
}

// PinConnection is one pin of a by-reference query result.
type PinConnection struct {
	PinNumber string `json:"pin_number"`
	PinName   string `json:"pin_name"`
	Net       string `json:"net"`
}

// ComponentPins is the result of a by-reference query.
type ComponentPins struct {
	Reference string          `json:"reference"`
	Pins      []PinConnection `json:"pins"`
}

// NetPin is one pin of a by-net query result.
type NetPin struct {
	Reference string `json:"reference"`
	PinNumber string `json:"pin_number"`
	PinName   string `json:"pin_name"`
}

// NetConnections is the result of a by-net query.
type NetConnections struct {
	Net  string   `json:"net"`
	Pins []NetPin `json:"pins"`
}

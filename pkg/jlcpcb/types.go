// Package jlcpcb queries the JLCPCB parts database, an SQLite FTS5
// snapshot distributed by the kicad-jlcpcb-tools plugin. The package
// covers finding (or downloading) the database, building FTS5 search
// queries, and shaping rows into JSON-friendly results.
package jlcpcb

// PriceTier is one quantity break of a part's price schedule.
type PriceTier struct {
	MinQty    int     `json:"min_qty"`
	MaxQty    *int    `json:"max_qty"` // nil for open-ended tiers
	UnitPrice float64 `json:"unit_price"`
}

// Part is a single row of the parts database.
type Part struct {
	LCSC           string      `json:"lcsc"`
	FirstCategory  string      `json:"first_category"`
	SecondCategory string      `json:"second_category"`
	MfrPart        string      `json:"mfr_part"`
	Package        string      `json:"package"`
	SolderJoints   string      `json:"solder_joints"`
	Manufacturer   string      `json:"manufacturer"`
	LibraryType    string      `json:"library_type"`
	Description    string      `json:"description"`
	Datasheet      string      `json:"datasheet"`
	PriceTiers     []PriceTier `json:"price_tiers"`
	Stock          int         `json:"stock"`
}

// SearchResult is the JSON envelope of a parts search.
type SearchResult struct {
	Results []Part `json:"results"`
	Count   int    `json:"count"`
}

// SearchOptions selects and filters parts. At least one of Search,
// Category, Package, or Manufacturer must be set.
type SearchOptions struct {
	Search       string // free-text search, split on whitespace
	Category     string // filter on First Category
	Package      string // filter on Package
	Manufacturer string // filter on Manufacturer
	InStock      bool   // only parts with stock > 0
	BasicOnly    bool   // only 'Basic' library type parts
	Limit        int    // maximum rows, DefaultLimit when <= 0
}

// DefaultLimit caps search results when no explicit limit is given.
const DefaultLimit = 20

// HasCriteria reports whether the options select anything at all.
func (o SearchOptions) HasCriteria() bool {
	return o.Search != "" || o.Category != "" || o.Package != "" || o.Manufacturer != ""
}

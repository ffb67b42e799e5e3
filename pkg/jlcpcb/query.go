package jlcpcb

import (
	"fmt"
	"regexp"
	"strings"
)

// Columns selected from the parts table, in result order.
var searchColumns = []string{
	`"LCSC Part"`,
	`"First Category"`,
	`"Second Category"`,
	`"MFR.Part"`,
	`"Package"`,
	`"Solder Joint"`,
	`"Manufacturer"`,
	`"Library Type"`,
	`"Description"`,
	`"Datasheet"`,
	`"Price"`,
	`"Stock"`,
}

// Characters with meaning to the FTS5 query parser.
var fts5Special = regexp.MustCompile(`["*\-+():^~]`)

// sanitizeFTS5Term escapes a search term for use inside an FTS5 MATCH
// expression: terms containing special characters are wrapped in double
// quotes with any internal quotes doubled.
func sanitizeFTS5Term(term string) string {
	if fts5Special.MatchString(term) {
		return `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
	}
	return term
}

// buildSearchQuery assembles the SQL for a parts search. Free-text
// words of three or more characters go through the FTS5 trigram index;
// shorter words fall back to LIKE on the description. Stock and Library
// Type are unindexed columns and use plain WHERE predicates.
func buildSearchQuery(opts SearchOptions) string {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	selectClause := fmt.Sprintf("SELECT %s FROM parts WHERE ", strings.Join(searchColumns, ", "))

	var matchChunks []string
	var likeChunks []string
	var whereChunks []string

	for _, word := range strings.Fields(opts.Search) {
		sanitized := sanitizeFTS5Term(word)
		if len(word) >= 3 {
			matchChunks = append(matchChunks, fmt.Sprintf(`"%s"`, sanitized))
		} else {
			likeChunks = append(likeChunks, fmt.Sprintf(`"Description" LIKE '%%%s%%'`, word))
		}
	}

	// Column-specific filters use FTS5 column syntax
	if opts.Category != "" {
		matchChunks = append(matchChunks, fmt.Sprintf(`"First Category":"%s"`, sanitizeFTS5Term(opts.Category)))
	}
	if opts.Package != "" {
		matchChunks = append(matchChunks, fmt.Sprintf(`"Package":"%s"`, sanitizeFTS5Term(opts.Package)))
	}
	if opts.Manufacturer != "" {
		matchChunks = append(matchChunks, fmt.Sprintf(`"Manufacturer":"%s"`, sanitizeFTS5Term(opts.Manufacturer)))
	}

	if opts.InStock {
		whereChunks = append(whereChunks, `CAST("Stock" AS INTEGER) > 0`)
	}
	if opts.BasicOnly {
		whereChunks = append(whereChunks, `"Library Type" = 'Basic'`)
	}

	var queryParts []string
	if len(matchChunks) > 0 {
		queryParts = append(queryParts, "parts MATCH '"+strings.Join(matchChunks, " AND ")+"'")
	}
	queryParts = append(queryParts, likeChunks...)
	queryParts = append(queryParts, whereChunks...)

	if len(queryParts) == 0 {
		// No search criteria: match nothing rather than everything
		return selectClause + "1=0"
	}

	return selectClause + strings.Join(queryParts, " AND ") + fmt.Sprintf(" LIMIT %d", limit)
}

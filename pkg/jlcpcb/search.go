package jlcpcb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Search runs a parts query against the database at dbPath.
func Search(ctx context.Context, dbPath string, opts SearchOptions) (*SearchResult, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open parts database: %w", err)
	}
	defer db.Close()

	query := buildSearchQuery(opts)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("parts query failed: %w", err)
	}
	defer rows.Close()

	results := make([]Part, 0)
	for rows.Next() {
		var lcsc, firstCat, secondCat, mfrPart, pkg, solder sql.NullString
		var manufacturer, libraryType, description, datasheet, price, stock sql.NullString

		if err := rows.Scan(
			&lcsc, &firstCat, &secondCat, &mfrPart, &pkg, &solder,
			&manufacturer, &libraryType, &description, &datasheet, &price, &stock,
		); err != nil {
			return nil, fmt.Errorf("failed to scan part row: %w", err)
		}

		stockCount, err := strconv.Atoi(strings.TrimSpace(stock.String))
		if err != nil {
			stockCount = 0
		}

		results = append(results, Part{
			LCSC:           lcsc.String,
			FirstCategory:  firstCat.String,
			SecondCategory: secondCat.String,
			MfrPart:        mfrPart.String,
			Package:        pkg.String,
			SolderJoints:   solder.String,
			Manufacturer:   manufacturer.String,
			LibraryType:    libraryType.String,
			Description:    description.String,
			Datasheet:      datasheet.String,
			PriceTiers:     ParsePriceTiers(price.String),
			Stock:          stockCount,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("parts query failed: %w", err)
	}

	return &SearchResult{Results: results, Count: len(results)}, nil
}

// ParsePriceTiers parses the database's price column into structured
// tiers. The format is "1-9:0.0234,10-29:0.0195,...": a quantity range
// (open-ended when the upper bound or the dash is missing) and a unit
// price. Malformed tiers are skipped.
func ParsePriceTiers(priceStr string) []PriceTier {
	tiers := make([]PriceTier, 0)

	for _, tier := range strings.Split(priceStr, ",") {
		tier = strings.TrimSpace(tier)
		if tier == "" || !strings.Contains(tier, ":") {
			continue
		}

		qtyRange, priceText, _ := strings.Cut(tier, ":")
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			continue
		}

		if minText, maxText, found := strings.Cut(qtyRange, "-"); found {
			minQty, err := strconv.Atoi(minText)
			if err != nil {
				continue
			}
			var maxQty *int
			if maxText != "" {
				m, err := strconv.Atoi(maxText)
				if err != nil {
					continue
				}
				maxQty = &m
			}
			tiers = append(tiers, PriceTier{MinQty: minQty, MaxQty: maxQty, UnitPrice: price})
		} else {
			minQty, err := strconv.Atoi(qtyRange)
			if err != nil {
				continue
			}
			tiers = append(tiers, PriceTier{MinQty: minQty, UnitPrice: price})
		}
	}

	return tiers
}

// Package catalog turns the full product list into the visible, ordered
// subset for one render. It holds no state; Apply is safe to call repeatedly
// with different criteria against the same list.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ruya/internal/domain/entity"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Sort keys accepted by Apply. Anything else leaves the filtered order
// untouched.
const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortCategory  = "category"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

// Price bands are inclusive at both ends, so a product priced exactly 50
// matches both "0-50" and "50-100".
const (
	PriceBand0To50    = "0-50"
	PriceBand50To100  = "50-100"
	PriceBand100To150 = "100-150"
	PriceBand150Plus  = "150+"
)

// Criteria describes one filter/sort request. Every field has an explicit
// zero-value meaning: empty search matches everything, empty or "all"
// category disables category filtering, empty price range disables the band
// filter, and an unrecognized sort key keeps the input order.
type Criteria struct {
	SearchTerm     string
	Category       string
	PriceRange     string
	SortKey        string
	FeaturedOnly   bool
	BestsellerOnly bool
}

// DefaultCriteria returns criteria with all filters disabled.
func DefaultCriteria() Criteria {
	return Criteria{Category: CategoryAll}
}

// Apply filters products by criteria and sorts the result. The input slice is
// never modified; ties keep their relative input order.
func Apply(products []entity.Product, criteria Criteria) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matches(p, criteria) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, criteria.SortKey)
	return filtered
}

func matches(p entity.Product, criteria Criteria) bool {
	if term := strings.ToLower(strings.TrimSpace(criteria.SearchTerm)); term != "" {
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)
		if !strings.Contains(name, term) && !strings.Contains(description, term) {
			return false
		}
	}

	selected := strings.ToLower(strings.TrimSpace(criteria.Category))
	if selected != "" && selected != CategoryAll {
		category := strings.ToLower(strings.TrimSpace(p.Category))
		if category != selected {
			return false
		}
	}

	if !matchesPriceBand(p.Price, criteria.PriceRange) {
		return false
	}

	if criteria.FeaturedOnly && !p.Featured {
		return false
	}
	if criteria.BestsellerOnly && !p.Bestseller {
		return false
	}

	return true
}

func matchesPriceBand(price float64, band string) bool {
	switch band {
	case PriceBand0To50:
		return price >= 0 && price <= 50
	case PriceBand50To100:
		return price >= 50 && price <= 100
	case PriceBand100To150:
		return price >= 100 && price <= 150
	case PriceBand150Plus:
		return price >= 150
	default:
		// Unset or unrecognized band disables the filter.
		return true
	}
}

func sortProducts(products []entity.Product, sortKey string) {
	switch sortKey {
	case SortName:
		collator := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortCategory:
		collator := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Category, products[j].Category) < 0
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	}
	// Unknown sort key: keep the filtered order as-is.
}

package catalog

import (
	"sort"
	"strings"

	"github.com/hanashop/storefront/internal/domain"
)

// MaxLineQuantity caps how many units of one product a single cart line
// may hold, regardless of stock.
const MaxLineQuantity = 10

// SortOption orders a product listing.
type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

// Query narrows, orders and pages a product listing.
type Query struct {
	CategoryID  int64
	SearchQuery string
	MinPrice    int64
	MaxPrice    int64
	InStockOnly bool
	Sort        SortOption
	Page        int
	Limit       int
}

// Page is one page of a filtered listing.
type Page struct {
	Items      []domain.Product `json:"items"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageCount  int              `json:"page_count"`
}

// InStock reports whether the product can cover the requested quantity.
func InStock(p domain.Product, quantity int) bool {
	return p.StockQuantity >= quantity
}

// MaxOrderQuantity returns how many units of the product one cart line
// may hold: stock, capped at MaxLineQuantity.
func MaxOrderQuantity(p domain.Product) int {
	if p.StockQuantity < MaxLineQuantity {
		return p.StockQuantity
	}
	return MaxLineQuantity
}

// Filter returns the products matching the query's filter fields.
func Filter(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.SearchQuery))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if q.CategoryID != 0 && p.CategoryID != q.CategoryID {
			continue
		}
		if q.MinPrice > 0 && p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		if q.InStockOnly && p.StockQuantity == 0 {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Sort orders products by the given option without mutating the input.
func Sort(products []domain.Product, sortBy SortOption) []domain.Product {
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	default: // popular
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ReviewCount > sorted[j].ReviewCount })
	}
	return sorted
}

// Paginate slices one page out of the products. Page numbers start at 1.
func Paginate(products []domain.Product, page, limit int) Page {
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if page < 1 {
		page = 1
	}

	total := len(products)
	pageCount := (total + limit - 1) / limit
	if pageCount == 0 {
		pageCount = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	items := make([]domain.Product, end-start)
	copy(items, products[start:end])

	return Page{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageCount:  pageCount,
	}
}

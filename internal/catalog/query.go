package catalog

import (
	"sort"
	"strings"

	"storefront/internal/models"
)

// SortMode selects the ordering of filtered results.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "asc"
	SortPriceDesc SortMode = "desc"
)

// Filter is one query over the catalog. Zero values are inactive, so
// the empty filter returns the catalog unchanged. Gender matching is
// case-insensitive; category, size and color matching is exact, because
// those selections come verbatim from the facet lists.
type Filter struct {
	Query      string
	Gender     string
	Categories []string
	Sizes      []string
	Colors     []string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       SortMode
}

// Apply returns the products satisfying every active predicate, in the
// filter's sort order. Price ties keep their original catalog order;
// relevance keeps the filtered order untouched.
func Apply(products []models.Product, f Filter) []models.Product {
	res := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			res = append(res, p)
		}
	}
	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price < res[j].Price })
	case SortPriceDesc:
		sort.SliceStable(res, func(i, j int) bool { return res[i].Price > res[j].Price })
	}
	return res
}

func (f Filter) matches(p models.Product) bool {
	if q := strings.TrimSpace(f.Query); q != "" &&
		!strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) {
		return false
	}
	if f.Gender != "" && !matchesGender(p.Gender, f.Gender) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, p.Category) {
		return false
	}
	if len(f.Sizes) > 0 && !intersects(p.Sizes, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(p.Colors, f.Colors) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func matchesGender(set []string, want string) bool {
	for _, g := range set {
		if strings.EqualFold(g, want) {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}

// FacetSet is the material for the filter sidebar. It is derived from
// the complete catalog, never the filtered subset, so applying a filter
// does not shrink the options on offer.
type FacetSet struct {
	Categories []string
	Sizes      []string
	Colors     []string
	MinPrice   float64
	MaxPrice   float64
}

// Facets collects distinct categories, sizes and colors in first-seen
// order, plus the price bounds. An empty catalog yields zero bounds.
func Facets(products []models.Product) FacetSet {
	var fs FacetSet
	seenCat := map[string]bool{}
	seenSize := map[string]bool{}
	seenColor := map[string]bool{}

	for i, p := range products {
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			fs.Categories = append(fs.Categories, p.Category)
		}
		for _, sz := range p.Sizes {
			if !seenSize[sz] {
				seenSize[sz] = true
				fs.Sizes = append(fs.Sizes, sz)
			}
		}
		for _, c := range p.Colors {
			if !seenColor[c] {
				seenColor[c] = true
				fs.Colors = append(fs.Colors, c)
			}
		}
		if i == 0 || p.Price < fs.MinPrice {
			fs.MinPrice = p.Price
		}
		if i == 0 || p.Price > fs.MaxPrice {
			fs.MaxPrice = p.Price
		}
	}
	return fs
}

// Featured is the home-page rail: the newest products for an audience,
// newest first. An empty gender means everyone.
func Featured(products []models.Product, gender string, limit int) []models.Product {
	res := make([]models.Product, 0, len(products))
	for _, p := range products {
		if gender == "" || matchesGender(p.Gender, gender) {
			res = append(res, p)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// Related picks up to limit products sharing a category with the given
// one, excluding it.
func Related(products []models.Product, of models.Product, limit int) []models.Product {
	var res []models.Product
	for _, p := range products {
		if p.Category == of.Category && p.ID != of.ID {
			res = append(res, p)
			if limit > 0 && len(res) == limit {
				break
			}
		}
	}
	return res
}

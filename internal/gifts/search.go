package gifts

import (
	"math"
	"sort"
	"strings"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// PriceRangeFilter is a requested price interval; absent bounds default
// to 0 and +Inf
type PriceRangeFilter struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// SearchParams are all optional and independently combinable. An absent
// parameter is a no-op for its stage, not an exclusion.
type SearchParams struct {
	Query      string            `json:"query"`
	Categories []string          `json:"categories"`
	Tags       []string          `json:"tags"`
	PriceRange *PriceRangeFilter `json:"price_range"`
	SortBy     string            `json:"sort_by"`
}

// Search applies the filter pipeline over an already-materialized gift
// list: text query, category, tag, price overlap, then sort. Pure and
// stateless; no stage goes back to storage. Without a sort the input
// order is preserved.
func Search(allGifts []GiftResponse, params SearchParams) []GiftResponse {
	results := allGifts

	if params.Query != "" {
		results = filterByQuery(results, params.Query)
	}
	if len(params.Categories) > 0 {
		results = filterByCategories(results, params.Categories)
	}
	if len(params.Tags) > 0 {
		results = filterByTags(results, params.Tags)
	}
	if params.PriceRange != nil {
		results = filterByPriceOverlap(results, *params.PriceRange)
	}

	return sortGifts(results, params.SortBy)
}

// filterByQuery keeps gifts whose name or description contains the
// query, case-insensitively. No tokenization, no ranking.
func filterByQuery(gifts []GiftResponse, query string) []GiftResponse {
	needle := strings.ToLower(query)

	var results []GiftResponse
	for _, gift := range gifts {
		if strings.Contains(strings.ToLower(gift.Name), needle) ||
			strings.Contains(strings.ToLower(gift.Description), needle) {
			results = append(results, gift)
		}
	}
	return results
}

func filterByCategories(gifts []GiftResponse, categories []string) []GiftResponse {
	allowed := make(map[string]bool, len(categories))
	for _, category := range categories {
		allowed[category] = true
	}

	var results []GiftResponse
	for _, gift := range gifts {
		if allowed[string(gift.Category)] {
			results = append(results, gift)
		}
	}
	return results
}

// filterByTags keeps gifts carrying at least one of the requested tags
func filterByTags(gifts []GiftResponse, requestedTags []string) []GiftResponse {
	requested := make(map[string]bool, len(requestedTags))
	for _, tag := range requestedTags {
		requested[tag] = true
	}

	var results []GiftResponse
	for _, gift := range gifts {
		for _, tag := range gift.Tags {
			if requested[tag] {
				results = append(results, gift)
				break
			}
		}
	}
	return results
}

// filterByPriceOverlap keeps gifts whose price interval intersects the
// requested interval. Overlap, not containment: a 125-150 gift matches
// a requested 100-130.
func filterByPriceOverlap(gifts []GiftResponse, requested PriceRangeFilter) []GiftResponse {
	min := 0.0
	if requested.Min != nil {
		min = *requested.Min
	}
	max := math.Inf(1)
	if requested.Max != nil {
		max = *requested.Max
	}

	var results []GiftResponse
	for _, gift := range gifts {
		if gift.PriceRange.Max >= min && gift.PriceRange.Min <= max {
			results = append(results, gift)
		}
	}
	return results
}

func sortGifts(gifts []GiftResponse, sortBy string) []GiftResponse {
	var less func(i, j int) bool

	switch sortBy {
	case SortPriceAsc:
		less = func(i, j int) bool { return gifts[i].PriceRange.Min < gifts[j].PriceRange.Min }
	case SortPriceDesc:
		less = func(i, j int) bool { return gifts[i].PriceRange.Max > gifts[j].PriceRange.Max }
	case SortNameAsc:
		less = func(i, j int) bool { return compareNames(gifts[i].Name, gifts[j].Name) < 0 }
	case SortNameDesc:
		less = func(i, j int) bool { return compareNames(gifts[i].Name, gifts[j].Name) > 0 }
	default:
		return gifts
	}

	// Sort a copy; the caller's slice may be the unfiltered input
	sorted := make([]GiftResponse, len(gifts))
	copy(sorted, gifts)
	gifts = sorted
	sort.SliceStable(gifts, less)
	return gifts
}

// compareNames orders names case-insensitively so sorting does not
// split the catalog into an uppercase block and a lowercase block
func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

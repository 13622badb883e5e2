package gifts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func searchFixture() []GiftResponse {
	return []GiftResponse{
		{
			ID:          1,
			Slug:        "hand-thrown-mug",
			Name:        "Hand-Thrown Mug",
			Description: "A ceramic mug from a local studio",
			PriceRange:  PriceRange{Min: 10, Max: 20},
			Category:    CategoryOther,
			Tags:        []string{"kitchen", "handmade"},
		},
		{
			ID:          2,
			Slug:        "museum-membership",
			Name:        "Museum Membership",
			Description: "A year of unlimited visits",
			PriceRange:  PriceRange{Min: 125, Max: 150},
			Category:    CategorySubscription,
			Tags:        []string{"culture"},
		},
		{
			ID:          3,
			Slug:        "cooking-class",
			Name:        "cooking class",
			Description: "An evening class for two",
			PriceRange:  PriceRange{Min: 200, Max: 300},
			Category:    CategoryExperience,
			Tags:        []string{"kitchen", "culture"},
		},
		{
			ID:          4,
			Slug:        "animal-shelter-donation",
			Name:        "Animal Shelter Donation",
			Description: "A donation in their name",
			PriceRange:  PriceRange{Min: 5, Max: 500},
			Category:    CategoryDonation,
			Tags:        []string{},
		},
	}
}

func slugs(gifts []GiftResponse) []string {
	result := make([]string, len(gifts))
	for i, gift := range gifts {
		result[i] = gift.Slug
	}
	return result
}

func TestSearchNoParamsReturnsInputOrder(t *testing.T) {
	gifts := searchFixture()
	results := Search(gifts, SearchParams{})
	assert.Equal(t, slugs(gifts), slugs(results))
}

func TestSearchQueryMatchesNameAndDescription(t *testing.T) {
	gifts := searchFixture()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "case-insensitive name match",
			query: "MUG",
			want:  []string{"hand-thrown-mug"},
		},
		{
			name:  "description match",
			query: "unlimited visits",
			want:  []string{"museum-membership"},
		},
		{
			name:  "substring spans multiple gifts",
			query: "a",
			want:  []string{"hand-thrown-mug", "museum-membership", "cooking-class", "animal-shelter-donation"},
		},
		{
			name:  "no match",
			query: "spaceship",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(gifts, SearchParams{Query: tt.query})
			assert.Equal(t, tt.want, slugs(results))
		})
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	gifts := searchFixture()

	results := Search(gifts, SearchParams{Categories: []string{"subscription", "donation"}})
	assert.Equal(t, []string{"museum-membership", "animal-shelter-donation"}, slugs(results))
}

func TestSearchTagFilterIsOrSemantics(t *testing.T) {
	gifts := searchFixture()

	// A gift matches when it carries at least one requested tag
	results := Search(gifts, SearchParams{Tags: []string{"handmade", "culture"}})
	assert.Equal(t, []string{"hand-thrown-mug", "museum-membership", "cooking-class"}, slugs(results))

	results = Search(gifts, SearchParams{Tags: []string{"garden"}})
	assert.Empty(t, results)
}

func TestSearchPriceOverlap(t *testing.T) {
	gifts := searchFixture()

	tests := []struct {
		name string
		min  *float64
		max  *float64
		want []string
	}{
		{
			name: "partial overlap counts, disjoint does not",
			min:  floatPtr(100),
			max:  floatPtr(130),
			want: []string{"museum-membership", "animal-shelter-donation"},
		},
		{
			name: "mug 10-20 overlaps requested 15-30",
			min:  floatPtr(15),
			max:  floatPtr(30),
			want: []string{"hand-thrown-mug", "animal-shelter-donation"},
		},
		{
			name: "mug 10-20 does not overlap requested 25-30",
			min:  floatPtr(25),
			max:  floatPtr(30),
			want: []string{"animal-shelter-donation"},
		},
		{
			name: "missing max defaults to unbounded",
			min:  floatPtr(150),
			max:  nil,
			want: []string{"museum-membership", "cooking-class", "animal-shelter-donation"},
		},
		{
			name: "missing min defaults to zero",
			min:  nil,
			max:  floatPtr(9),
			want: []string{"animal-shelter-donation"},
		},
		{
			name: "boundary touch is an overlap",
			min:  floatPtr(20),
			max:  floatPtr(20),
			want: []string{"hand-thrown-mug", "animal-shelter-donation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(gifts, SearchParams{
				PriceRange: &PriceRangeFilter{Min: tt.min, Max: tt.max},
			})
			assert.Equal(t, tt.want, slugs(results))
		})
	}
}

func TestSearchFiltersCompose(t *testing.T) {
	gifts := searchFixture()

	results := Search(gifts, SearchParams{
		Query:      "a",
		Tags:       []string{"kitchen"},
		PriceRange: &PriceRangeFilter{Min: floatPtr(0), Max: floatPtr(100)},
	})
	assert.Equal(t, []string{"hand-thrown-mug"}, slugs(results))
}

func TestSearchSorting(t *testing.T) {
	gifts := searchFixture()

	tests := []struct {
		name   string
		sortBy string
		want   []string
	}{
		{
			name:   "price ascending orders by lower bound",
			sortBy: SortPriceAsc,
			want:   []string{"animal-shelter-donation", "hand-thrown-mug", "museum-membership", "cooking-class"},
		},
		{
			name:   "price descending orders by upper bound",
			sortBy: SortPriceDesc,
			want:   []string{"animal-shelter-donation", "cooking-class", "museum-membership", "hand-thrown-mug"},
		},
		{
			name:   "name ascending ignores case",
			sortBy: SortNameAsc,
			want:   []string{"animal-shelter-donation", "cooking-class", "hand-thrown-mug", "museum-membership"},
		},
		{
			name:   "name descending ignores case",
			sortBy: SortNameDesc,
			want:   []string{"museum-membership", "hand-thrown-mug", "cooking-class", "animal-shelter-donation"},
		},
		{
			name:   "unknown sort preserves input order",
			sortBy: "relevance",
			want:   []string{"hand-thrown-mug", "museum-membership", "cooking-class", "animal-shelter-donation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Search(gifts, SearchParams{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, slugs(results))
		})
	}
}

func TestSearchSortDoesNotMutateInput(t *testing.T) {
	gifts := searchFixture()
	original := slugs(gifts)

	Search(gifts, SearchParams{SortBy: SortPriceDesc})
	assert.Equal(t, original, slugs(gifts))
}

func TestSearchSortRunsAfterFilters(t *testing.T) {
	gifts := searchFixture()

	results := Search(gifts, SearchParams{
		Tags:   []string{"kitchen"},
		SortBy: SortPriceDesc,
	})
	assert.Equal(t, []string{"cooking-class", "hand-thrown-mug"}, slugs(results))
}

package gifts

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"giftly/internal/shared/constants"
	"giftly/internal/tags"
	"giftly/pkg/cache"
)

type fakeGiftRepo struct {
	gifts        map[string]*Gift
	nextID       uint
	tagsByGift   map[uint][]string
	listCalls    int
	upsertCalled bool
}

func newFakeGiftRepo() *fakeGiftRepo {
	return &fakeGiftRepo{
		gifts:      make(map[string]*Gift),
		nextID:     1,
		tagsByGift: make(map[uint][]string),
	}
}

func (f *fakeGiftRepo) seed(gift Gift, tagNames ...string) {
	gift.ID = f.nextID
	f.nextID++
	f.gifts[gift.Slug] = &gift
	f.tagsByGift[gift.ID] = tagNames
}

func (f *fakeGiftRepo) ListVisible(ctx context.Context) ([]Gift, error) {
	f.listCalls++
	var result []Gift
	for _, gift := range f.gifts {
		if !gift.IsHidden {
			result = append(result, *gift)
		}
	}
	return result, nil
}

func (f *fakeGiftRepo) ListByCategory(ctx context.Context, category GiftCategory) ([]Gift, error) {
	var result []Gift
	for _, gift := range f.gifts {
		if !gift.IsHidden && gift.Category == category {
			result = append(result, *gift)
		}
	}
	return result, nil
}

func (f *fakeGiftRepo) ListAll(ctx context.Context) ([]Gift, error) {
	var result []Gift
	for _, gift := range f.gifts {
		result = append(result, *gift)
	}
	return result, nil
}

func (f *fakeGiftRepo) GetBySlug(ctx context.Context, slug string) (*Gift, error) {
	gift, ok := f.gifts[slug]
	if !ok {
		return nil, ErrGiftNotFound
	}
	copied := *gift
	return &copied, nil
}

func (f *fakeGiftRepo) Upsert(ctx context.Context, input UpsertGiftRequest) (*Gift, error) {
	f.upsertCalled = true
	gift, ok := f.gifts[input.Slug]
	if !ok {
		gift = &Gift{ID: f.nextID, Slug: input.Slug}
		f.nextID++
		f.gifts[input.Slug] = gift
	}
	gift.Name = input.Name
	gift.Description = input.Description
	gift.MinPrice = input.PriceRange.Min
	gift.MaxPrice = input.PriceRange.Max
	gift.Link = input.Link
	gift.IsHidden = input.IsHidden
	gift.Category = GiftCategory(input.Category)
	f.tagsByGift[gift.ID] = input.Tags
	copied := *gift
	return &copied, nil
}

func (f *fakeGiftRepo) Delete(ctx context.Context, slug string) error {
	if gift, ok := f.gifts[slug]; ok {
		delete(f.tagsByGift, gift.ID)
		delete(f.gifts, slug)
	}
	return nil
}

type fakeTagsRepo struct {
	repo *fakeGiftRepo
}

func (f *fakeTagsRepo) GetAll(ctx context.Context) ([]tags.Tag, error) {
	return nil, nil
}

func (f *fakeTagsRepo) GetByNames(ctx context.Context, names []string) ([]tags.Tag, error) {
	return nil, nil
}

func (f *fakeTagsRepo) GetNamesByGiftID(ctx context.Context, giftID uint) ([]string, error) {
	names := f.repo.tagsByGift[giftID]
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (f *fakeTagsRepo) GetNamesByGiftIDs(ctx context.Context, giftIDs []uint) (map[uint][]string, error) {
	result := make(map[uint][]string)
	for _, id := range giftIDs {
		if names, ok := f.repo.tagsByGift[id]; ok && len(names) > 0 {
			result[id] = names
		}
	}
	return result, nil
}

func (f *fakeTagsRepo) EnsureByNames(tx *gorm.DB, names []string) (map[string]uint, error) {
	return nil, nil
}

func (f *fakeTagsRepo) ReconcileGiftTags(tx *gorm.DB, giftID uint, desiredTagIDs []uint) error {
	return nil
}

// fakeCache stores marshaled values in a map, matching the JSON
// round-trip semantics of the redis-backed implementation
type fakeCache struct {
	entries        map[string][]byte
	patternDeletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	f.patternDeletes = append(f.patternDeletes, pattern)
	f.entries = make(map[string][]byte)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) bool {
	_, ok := f.entries[key]
	return ok
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := f.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return f.Get(ctx, key, dest)
}

func (f *fakeCache) Ping(ctx context.Context) error {
	return nil
}

type fakePublisher struct {
	upserted []string
}

func (f *fakePublisher) PublishGiftUpserted(ctx context.Context, slug string) error {
	f.upserted = append(f.upserted, slug)
	return nil
}

func newTestService() (*fakeGiftRepo, *fakeCache, *fakePublisher, Service) {
	repo := newFakeGiftRepo()
	tagsRepo := &fakeTagsRepo{repo: repo}
	cacheService := newFakeCache()
	publisher := &fakePublisher{}

	svc := NewService(repo, tagsRepo)
	svc.SetCacheService(cacheService)
	svc.SetPublisher(publisher)
	return repo, cacheService, publisher, svc
}

func TestListVisibleUsesCacheOnSecondCall(t *testing.T) {
	repo, _, _, svc := newTestService()
	repo.seed(Gift{Slug: "mug", Name: "Mug", Category: CategoryOther})
	repo.seed(Gift{Slug: "secret", Name: "Secret", IsHidden: true, Category: CategoryOther})

	first, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, "mug", first[0].Slug)
	assert.Equal(t, 1, repo.listCalls)

	second, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "cache hit must not reach the repository")
}

func TestListVisibleReturnsEmptyTagArray(t *testing.T) {
	repo, _, _, svc := newTestService()
	repo.seed(Gift{Slug: "bare", Name: "Bare", Category: CategoryOther})

	gifts, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.NotNil(t, gifts[0].Tags)
	assert.Empty(t, gifts[0].Tags)
}

func TestUpsertRejectsInvalidPriceRange(t *testing.T) {
	_, _, _, svc := newTestService()

	tests := []struct {
		name  string
		price PriceRange
	}{
		{name: "negative min", price: PriceRange{Min: -1, Max: 10}},
		{name: "max below min", price: PriceRange{Min: 50, Max: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), UpsertGiftRequest{
				Slug:       "mug",
				Name:       "Mug",
				PriceRange: tt.price,
				Link:       "https://example.com/mug",
				Category:   "other",
			})
			assert.ErrorIs(t, err, ErrInvalidPriceRange)
		})
	}
}

func TestUpsertInvalidatesCacheAndPublishes(t *testing.T) {
	repo, cacheService, publisher, svc := newTestService()
	repo.seed(Gift{Slug: "mug", Name: "Mug", Category: CategoryOther})

	_, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	require.True(t, cacheService.Exists(context.Background(), constants.CACHE_GIFTS_VISIBLE))

	updated, err := svc.Upsert(context.Background(), UpsertGiftRequest{
		Slug:       "mug",
		Name:       "Hand-Thrown Mug",
		PriceRange: PriceRange{Min: 10, Max: 20},
		Link:       "https://example.com/mug",
		Category:   "other",
		Tags:       []string{"kitchen"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hand-Thrown Mug", updated.Name)
	assert.Equal(t, []string{"kitchen"}, updated.Tags)
	assert.Contains(t, cacheService.patternDeletes, constants.PATTERN_INVALIDATE_GIFTS_ALL)
	assert.Equal(t, []string{"mug"}, publisher.upserted)
	assert.False(t, cacheService.Exists(context.Background(), constants.CACHE_GIFTS_VISIBLE))
}

func TestUpsertSameSlugTwiceKeepsOneGift(t *testing.T) {
	repo, _, _, svc := newTestService()

	for _, name := range []string{"Mug", "Better Mug"} {
		_, err := svc.Upsert(context.Background(), UpsertGiftRequest{
			Slug:       "mug",
			Name:       name,
			PriceRange: PriceRange{Min: 10, Max: 20},
			Link:       "https://example.com/mug",
			Category:   "other",
		})
		require.NoError(t, err)
	}

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Better Mug", all[0].Name)
}

func TestGetBySlugReturnsHiddenGift(t *testing.T) {
	repo, _, _, svc := newTestService()
	repo.seed(Gift{Slug: "secret", Name: "Secret", IsHidden: true, Category: CategoryOther})

	gift, err := svc.GetBySlug(context.Background(), "secret")
	require.NoError(t, err)
	assert.True(t, gift.IsHidden)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGiftNotFound)
}

func TestSearchRunsOverVisibleCatalog(t *testing.T) {
	repo, _, _, svc := newTestService()
	repo.seed(Gift{Slug: "mug", Name: "Mug", MinPrice: 10, MaxPrice: 20, Category: CategoryOther})
	repo.seed(Gift{Slug: "hidden-mug", Name: "Hidden Mug", MinPrice: 10, MaxPrice: 20, IsHidden: true, Category: CategoryOther})

	results, err := svc.Search(context.Background(), SearchParams{Query: "mug"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "mug", results[0].Slug)
}

func TestSearchEmptyResultIsNotNil(t *testing.T) {
	_, _, _, svc := newTestService()

	results, err := svc.Search(context.Background(), SearchParams{Query: "anything"})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

package bookmarks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"giftly/internal/gifts"
	"giftly/internal/tags"
)

type bookmarkKey struct {
	userID uuid.UUID
	giftID uint
}

type fakeBookmarkRepo struct {
	rows map[bookmarkKey]time.Time
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{rows: make(map[bookmarkKey]time.Time)}
}

func (f *fakeBookmarkRepo) Add(ctx context.Context, userID uuid.UUID, giftID uint) error {
	key := bookmarkKey{userID, giftID}
	if _, exists := f.rows[key]; exists {
		return nil
	}
	f.rows[key] = time.Now()
	return nil
}

func (f *fakeBookmarkRepo) Remove(ctx context.Context, userID uuid.UUID, giftID uint) error {
	delete(f.rows, bookmarkKey{userID, giftID})
	return nil
}

func (f *fakeBookmarkRepo) Exists(ctx context.Context, userID uuid.UUID, giftID uint) (bool, error) {
	_, exists := f.rows[bookmarkKey{userID, giftID}]
	return exists, nil
}

func (f *fakeBookmarkRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error) {
	var result []Bookmark
	for key, createdAt := range f.rows {
		if key.userID == userID {
			result = append(result, Bookmark{
				UserID:    key.userID,
				GiftID:    key.giftID,
				CreatedAt: createdAt,
				Gift:      gifts.Gift{ID: key.giftID},
			})
		}
	}
	return result, nil
}

type fakeGiftsRepo struct {
	bySlug map[string]*gifts.Gift
}

func (f *fakeGiftsRepo) ListVisible(ctx context.Context) ([]gifts.Gift, error) { return nil, nil }
func (f *fakeGiftsRepo) ListByCategory(ctx context.Context, category gifts.GiftCategory) ([]gifts.Gift, error) {
	return nil, nil
}
func (f *fakeGiftsRepo) ListAll(ctx context.Context) ([]gifts.Gift, error) { return nil, nil }
func (f *fakeGiftsRepo) GetBySlug(ctx context.Context, slug string) (*gifts.Gift, error) {
	gift, ok := f.bySlug[slug]
	if !ok {
		return nil, gifts.ErrGiftNotFound
	}
	return gift, nil
}
func (f *fakeGiftsRepo) Upsert(ctx context.Context, input gifts.UpsertGiftRequest) (*gifts.Gift, error) {
	return nil, nil
}
func (f *fakeGiftsRepo) Delete(ctx context.Context, slug string) error { return nil }

type noopTagsRepo struct{}

func (noopTagsRepo) GetAll(ctx context.Context) ([]tags.Tag, error)                  { return nil, nil }
func (noopTagsRepo) GetByNames(ctx context.Context, names []string) ([]tags.Tag, error) {
	return nil, nil
}
func (noopTagsRepo) GetNamesByGiftID(ctx context.Context, giftID uint) ([]string, error) {
	return []string{}, nil
}
func (noopTagsRepo) GetNamesByGiftIDs(ctx context.Context, giftIDs []uint) (map[uint][]string, error) {
	return map[uint][]string{}, nil
}
func (noopTagsRepo) EnsureByNames(tx *gorm.DB, names []string) (map[string]uint, error) {
	return nil, nil
}
func (noopTagsRepo) ReconcileGiftTags(tx *gorm.DB, giftID uint, desiredTagIDs []uint) error {
	return nil
}

func newBookmarkTestService() (*fakeBookmarkRepo, Service) {
	repo := newFakeBookmarkRepo()
	giftsRepo := &fakeGiftsRepo{bySlug: map[string]*gifts.Gift{
		"mug":  {ID: 1, Slug: "mug", Name: "Mug"},
		"book": {ID: 2, Slug: "book", Name: "Book"},
	}}
	return repo, NewService(repo, giftsRepo, noopTagsRepo{})
}

func TestAddIsIdempotent(t *testing.T) {
	repo, svc := newBookmarkTestService()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Add(context.Background(), userID, "mug"))
	}

	assert.Len(t, repo.rows, 1)

	bookmarked, err := svc.IsBookmarked(context.Background(), userID, "mug")
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestAddPreservesOriginalCreatedAt(t *testing.T) {
	repo, svc := newBookmarkTestService()
	userID := uuid.New()

	require.NoError(t, svc.Add(context.Background(), userID, "mug"))
	original := repo.rows[bookmarkKey{userID, 1}]

	require.NoError(t, svc.Add(context.Background(), userID, "mug"))
	assert.Equal(t, original, repo.rows[bookmarkKey{userID, 1}])
}

func TestRemoveAbsentBookmarkIsNoOp(t *testing.T) {
	_, svc := newBookmarkTestService()
	userID := uuid.New()

	assert.NoError(t, svc.Remove(context.Background(), userID, "mug"))
}

func TestAddUnknownSlugFails(t *testing.T) {
	_, svc := newBookmarkTestService()

	err := svc.Add(context.Background(), uuid.New(), "missing")
	assert.ErrorIs(t, err, gifts.ErrGiftNotFound)
}

func TestBookmarksAreScopedPerUser(t *testing.T) {
	_, svc := newBookmarkTestService()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.Add(context.Background(), alice, "mug"))

	bookmarked, err := svc.IsBookmarked(context.Background(), bob, "mug")
	require.NoError(t, err)
	assert.False(t, bookmarked)

	aliceList, err := svc.ListForUser(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, aliceList, 1)

	bobList, err := svc.ListForUser(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, bobList)
}

func TestRemoveOnlyAffectsTargetGift(t *testing.T) {
	_, svc := newBookmarkTestService()
	userID := uuid.New()

	require.NoError(t, svc.Add(context.Background(), userID, "mug"))
	require.NoError(t, svc.Add(context.Background(), userID, "book"))
	require.NoError(t, svc.Remove(context.Background(), userID, "mug"))

	mugStatus, err := svc.IsBookmarked(context.Background(), userID, "mug")
	require.NoError(t, err)
	assert.False(t, mugStatus)

	bookStatus, err := svc.IsBookmarked(context.Background(), userID, "book")
	require.NoError(t, err)
	assert.True(t, bookStatus)
}

package constants

import "time"

// Redis cache keys for catalog reads
const (
	CACHE_GIFTS_VISIBLE  = "giftly:gifts:visible"
	CACHE_GIFTS_CATEGORY = "giftly:gifts:category:" // + category
	CACHE_GIFT_DETAIL    = "giftly:gifts:slug:"     // + slug

	PATTERN_INVALIDATE_GIFTS_ALL = "giftly:gifts:*"
)

// Cache TTLs. The catalog changes rarely and every write invalidates,
// so the TTL is only a backstop against missed invalidations.
const (
	TTL_GIFT_LIST   = 10 * time.Minute
	TTL_GIFT_DETAIL = 30 * time.Minute
)

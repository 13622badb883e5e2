package gifts

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"giftly/internal/shared/utils/response"
)

type Controller interface {
	ListGifts(c *gin.Context)
	SearchGifts(c *gin.Context)
	GetGift(c *gin.Context)
	UpsertGift(c *gin.Context)
	DeleteGift(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// ListGifts returns visible gifts, optionally narrowed to one category
func (ctrl *controller) ListGifts(c *gin.Context) {
	category := c.Query("category")

	var gifts []GiftResponse
	var err error
	if category != "" {
		gifts, err = ctrl.service.ListByCategory(c.Request.Context(), category)
	} else {
		gifts, err = ctrl.service.ListVisible(c.Request.Context())
	}
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.HasPrefix(err.Error(), "invalid category") {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gifts retrieved successfully", gifts, nil)
}

// SearchGifts parses the filter query parameters and runs the search
// pipeline over the visible catalog. Comma-separated list parameters
// mirror how the frontend serializes multi-selects into the URL.
func (ctrl *controller) SearchGifts(c *gin.Context) {
	params := SearchParams{
		Query:      c.Query("q"),
		Categories: splitListParam(c.Query("categories")),
		Tags:       splitListParam(c.Query("tags")),
		SortBy:     c.Query("sort"),
	}

	priceRange, err := parsePriceParams(c.Query("min"), c.Query("max"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}
	params.PriceRange = priceRange

	gifts, err := ctrl.service.Search(c.Request.Context(), params)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gifts retrieved successfully", gifts, nil)
}

func (ctrl *controller) GetGift(c *gin.Context) {
	slug := c.Param("slug")

	gift, err := ctrl.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrGiftNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift retrieved successfully", gift, nil)
}

func (ctrl *controller) UpsertGift(c *gin.Context) {
	var req UpsertGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	gift, err := ctrl.service.Upsert(c.Request.Context(), req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidPriceRange) || strings.HasPrefix(err.Error(), "invalid category") {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift upserted successfully", gift, nil)
}

func (ctrl *controller) DeleteGift(c *gin.Context) {
	slug := c.Param("slug")

	if err := ctrl.service.Delete(c.Request.Context(), slug); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift deleted successfully", nil, nil)
}

// splitListParam splits a comma-separated query value, dropping empty
// segments so "a,,b" and "a, b" both parse cleanly
func splitListParam(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// parsePriceParams returns nil when neither bound is present so the
// search pipeline skips the price stage entirely
func parsePriceParams(minStr, maxStr string) (*PriceRangeFilter, error) {
	if minStr == "" && maxStr == "" {
		return nil, nil
	}

	var filter PriceRangeFilter
	if minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, errors.New("invalid min price")
		}
		filter.Min = &min
	}
	if maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, errors.New("invalid max price")
		}
		filter.Max = &max
	}
	return &filter, nil
}

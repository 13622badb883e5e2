package bookmarks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftly/internal/gifts"
	"giftly/internal/shared/middleware"
	"giftly/internal/shared/utils/response"
)

type Controller interface {
	GetBookmarkedStatus(c *gin.Context)
	AddBookmark(c *gin.Context)
	RemoveBookmark(c *gin.Context)
	ListBookmarks(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetBookmarkedStatus answers whether the current user bookmarked the
// gift. Anonymous requests get 401 rather than a default answer; the
// client decides what an unknown status means.
func (ctrl *controller) GetBookmarkedStatus(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	slug := c.Param("slug")
	isBookmarked, err := ctrl.service.IsBookmarked(c.Request.Context(), userID, slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, gifts.ErrGiftNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookmark status retrieved successfully",
		BookmarkedResponse{IsBookmarked: isBookmarked}, nil)
}

func (ctrl *controller) AddBookmark(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	slug := c.Param("slug")
	if err := ctrl.service.Add(c.Request.Context(), userID, slug); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, gifts.ErrGiftNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift bookmarked successfully", nil, nil)
}

func (ctrl *controller) RemoveBookmark(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	slug := c.Param("slug")
	if err := ctrl.service.Remove(c.Request.Context(), userID, slug); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, gifts.ErrGiftNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookmark removed successfully", nil, nil)
}

func (ctrl *controller) ListBookmarks(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	bookmarks, err := ctrl.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookmarks retrieved successfully", bookmarks, nil)
}

func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	return id, err == nil
}

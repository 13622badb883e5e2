package wishlists

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"giftly/internal/gifts"
	"giftly/internal/shared/middleware"
	"giftly/internal/shared/utils/response"
)

type Controller interface {
	CreateWishlist(c *gin.Context)
	GetWishlist(c *gin.Context)
	ListWishlists(c *gin.Context)
	UpdateWishlist(c *gin.Context)
	DeleteWishlist(c *gin.Context)
	AddItem(c *gin.Context)
	RemoveItem(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateWishlist(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	wishlist, err := ctrl.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Wishlist created successfully", wishlist, nil)
}

func (ctrl *controller) GetWishlist(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlistID, ok := wishlistIDParam(c)
	if !ok {
		return
	}

	wishlist, err := ctrl.service.Get(c.Request.Context(), userID, wishlistID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Wishlist retrieved successfully", wishlist, nil)
}

func (ctrl *controller) ListWishlists(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlists, err := ctrl.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Wishlists retrieved successfully", wishlists, nil)
}

func (ctrl *controller) UpdateWishlist(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlistID, ok := wishlistIDParam(c)
	if !ok {
		return
	}

	var req UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	wishlist, err := ctrl.service.Update(c.Request.Context(), userID, wishlistID, req)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Wishlist updated successfully", wishlist, nil)
}

func (ctrl *controller) DeleteWishlist(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlistID, ok := wishlistIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), userID, wishlistID); err != nil {
		respondWishlistError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Wishlist deleted successfully", nil, nil)
}

func (ctrl *controller) AddItem(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlistID, ok := wishlistIDParam(c)
	if !ok {
		return
	}

	slug := c.Param("slug")
	if err := ctrl.service.AddItem(c.Request.Context(), userID, wishlistID, slug); err != nil {
		respondWishlistError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift added to wishlist successfully", nil, nil)
}

func (ctrl *controller) RemoveItem(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	wishlistID, ok := wishlistIDParam(c)
	if !ok {
		return
	}

	slug := c.Param("slug")
	if err := ctrl.service.RemoveItem(c.Request.Context(), userID, wishlistID, slug); err != nil {
		respondWishlistError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Gift removed from wishlist successfully", nil, nil)
}

func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	return id, err == nil
}

func wishlistIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid wishlist ID", nil, nil)
		return 0, false
	}
	return uint(id), true
}

func respondWishlistError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrWishlistNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, gifts.ErrGiftNotFound):
		statusCode = http.StatusNotFound
	}
	response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
}

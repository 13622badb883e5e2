package users

import (
	"errors"
	"net/http"

	"giftly/internal/shared/middleware"
	"giftly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	DeleteMe(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetMe(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return
	}

	user, err := ctrl.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrUserNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User retrieved successfully", user.ToResponse(), nil)
}

func (ctrl *controller) UpdateMe(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	user, err := ctrl.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrUserNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, ErrEmailExists):
			statusCode = http.StatusConflict
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User updated successfully", user.ToResponse(), nil)
}

func (ctrl *controller) DeleteMe(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Not authenticated", nil, nil)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), userID); err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "User deleted successfully", nil, nil)
}

func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	idStr, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

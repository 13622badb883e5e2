package tags

import (
	"net/http"

	"giftly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	GetAllTags(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllTags(c *gin.Context) {
	tags, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to retrieve tags", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tags retrieved successfully", tags, nil)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/middleware"
	"raider-registry-backend/internal/features/status/models"
	"raider-registry-backend/internal/features/status/service"
)

type StatusHandler struct {
	service service.StatusService
}

func NewStatusHandler(service service.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

func (h *StatusHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.List)
	router.POST("/status", h.Create)
}

// @Summary Record a status check
// @Tags status
// @Accept json
// @Produce json
// @Param request body models.StatusCheckCreate true "Client name"
// @Success 200 {object} models.StatusCheck
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /status [post]
func (h *StatusHandler) Create(c *gin.Context) {
	var req models.StatusCheckCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, errors.Wrap(err, errors.ErrCodeValidation, "Invalid request body"))
		return
	}

	check, err := h.service.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}

// @Summary List status checks
// @Tags status
// @Produce json
// @Success 200 {array} models.StatusCheck
// @Failure 500 {object} middleware.ErrorResponse
// @Router /status [get]
func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, checks)
}

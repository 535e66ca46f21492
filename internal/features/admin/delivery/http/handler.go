package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/middleware"
	"raider-registry-backend/internal/features/admin/models"
	"raider-registry-backend/internal/features/admin/service"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", h.ListUsers)
}

// @Summary List registrations
// @Description Returns every registered profile, newest first. Credentials are sent in the body.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ListUsersRequest true "Admin credentials"
// @Success 200 {object} models.ListUsersResponse "Profiles"
// @Failure 400 {object} middleware.ErrorResponse "Missing credentials"
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Failure 500 {object} middleware.ErrorResponse "Storage unavailable"
// @Router /users [post]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req models.ListUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, errors.Wrap(err, errors.ErrCodeValidation, "Invalid request body"))
		return
	}

	users, err := h.service.ListAll(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ListUsersResponse{
		Success: true,
		Users:   users,
		Count:   len(users),
	})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raider-registry-backend/internal/common/errors"
	"raider-registry-backend/internal/common/middleware"
	"raider-registry-backend/internal/features/registration/models"
	"raider-registry-backend/internal/features/registration/service"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		service: service,
	}
}

// RegisterRoutes регистрирует маршрут. mws выполняются перед обработчиком (например, проверка init_data).
func (h *RegistrationHandler) RegisterRoutes(router *gin.RouterGroup, mws ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mws...), h.Register)
	router.POST("/register", handlers...)
}

// @Summary Register a raider
// @Description Links a Twitter account, a Telegram username and an EVM wallet. Each of the three identifiers may be registered only once.
// @Tags registration
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Param init_data header string false "Telegram Mini App init data"
// @Success 200 {object} models.RegisterResponse "Created profile"
// @Failure 400 {object} middleware.ErrorResponse "Validation failed or identity already registered"
// @Failure 401 {object} middleware.ErrorResponse "Invalid Telegram init data"
// @Failure 500 {object} middleware.ErrorResponse "Storage unavailable"
// @Router /register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, errors.Wrap(err, errors.ErrCodeValidation, "Invalid request body"))
		return
	}

	input := models.RegisterInput{RegisterRequest: req}
	if tgUser, ok := middleware.TelegramUser(c); ok {
		input.VerifiedTelegramUsername = tgUser.Username
	}

	profile, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RegisterResponse{
		Success: true,
		User:    profile,
	})
}

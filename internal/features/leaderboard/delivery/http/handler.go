package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"raider-registry-backend/internal/features/leaderboard/service"
)

type LeaderboardHandler struct {
	service service.LeaderboardService
}

func NewLeaderboardHandler(service service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/"+service.BoardTopRaiders, h.TopRaiders)
	router.GET("/"+service.BoardTopWhales, h.TopWhales)
	router.GET("/"+service.BoardLoyaltyRanking, h.LoyaltyRanking)
}

// @Summary Top raiders
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.Entry
// @Router /top-raiders [get]
func (h *LeaderboardHandler) TopRaiders(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TopRaiders())
}

// @Summary Top whales
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.Entry
// @Router /top-whales [get]
func (h *LeaderboardHandler) TopWhales(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TopWhales())
}

// @Summary Loyalty ranking
// @Tags leaderboard
// @Produce json
// @Success 200 {array} models.Entry
// @Router /loyalty-ranking [get]
func (h *LeaderboardHandler) LoyaltyRanking(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.LoyaltyRanking())
}

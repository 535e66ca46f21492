package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raider-registry-backend/internal/features/leaderboard/models"
	"raider-registry-backend/internal/features/leaderboard/service"
)

func TestLeaderboardRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewLeaderboardHandler(service.NewLeaderboardService()).RegisterRoutes(r.Group("/api"))

	for _, path := range []string{"/api/top-raiders", "/api/top-whales", "/api/loyalty-ranking"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var entries []models.Entry
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
			require.Len(t, entries, 10)
			assert.Equal(t, 1, entries[0].Rank)
			assert.Equal(t, 10, entries[9].Rank)
			assert.Greater(t, entries[0].Score, entries[9].Score)
		})
	}
}

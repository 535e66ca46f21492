package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raider-registry-backend/internal/features/leaderboard/models"
)

func TestBoards_TenEntriesRankedByDescendingScore(t *testing.T) {
	svc := NewLeaderboardService()

	boards := map[string][]models.Entry{
		BoardTopRaiders:     svc.TopRaiders(),
		BoardTopWhales:      svc.TopWhales(),
		BoardLoyaltyRanking: svc.LoyaltyRanking(),
	}

	for name, entries := range boards {
		t.Run(name, func(t *testing.T) {
			require.Len(t, entries, 10)
			for i, e := range entries {
				assert.Equal(t, i+1, e.Rank)
				assert.NotEmpty(t, e.Label)
				if i > 0 {
					assert.Greater(t, entries[i-1].Score, e.Score)
				}
			}
		})
	}
}

func TestBoards_ReturnCopies(t *testing.T) {
	svc := NewLeaderboardService()

	first := svc.TopRaiders()
	first[0].Score = -1

	assert.NotEqual(t, int64(-1), svc.TopRaiders()[0].Score)
}

func TestRanked(t *testing.T) {
	out := ranked([]models.Entry{
		{Label: "low", Score: 1},
		{Label: "high", Score: 3},
		{Label: "mid", Score: 2},
	})

	assert.Equal(t, []models.Entry{
		{Rank: 1, Label: "high", Score: 3},
		{Rank: 2, Label: "mid", Score: 2},
		{Rank: 3, Label: "low", Score: 1},
	}, out)
}

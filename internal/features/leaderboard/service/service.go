package service

import (
	"sort"

	"raider-registry-backend/internal/features/leaderboard/models"
)

const (
	BoardTopRaiders     = "top-raiders"
	BoardTopWhales      = "top-whales"
	BoardLoyaltyRanking = "loyalty-ranking"
)

type LeaderboardService interface {
	TopRaiders() []models.Entry
	TopWhales() []models.Entry
	LoyaltyRanking() []models.Entry
}

// Статические рейтинги, пока нет реальной статистики
var (
	topRaiders = []models.Entry{
		{Label: "@raid_master", Score: 15420},
		{Label: "@cryptoknight", Score: 14870},
		{Label: "@moonchaser", Score: 13950},
		{Label: "@degen_dave", Score: 12780},
		{Label: "@tweetstorm", Score: 11640},
		{Label: "@alpha_hunter", Score: 10920},
		{Label: "@hodl_queen", Score: 9875},
		{Label: "@pump_pilot", Score: 8760},
		{Label: "@chain_raider", Score: 7690},
		{Label: "@gm_gang", Score: 6540},
	}

	topWhales = []models.Entry{
		{Label: "0x52908400098527886E0F7030069857D2E4169EE7", Score: 2450000},
		{Label: "0x8617E340B3D01FA5F11F306F4090FD50E238070D", Score: 1980000},
		{Label: "0xde709f2102306220921060314715629080e2fb77", Score: 1720000},
		{Label: "0x27b1fdb04752bbc536007a920d24acb045561c26", Score: 1390000},
		{Label: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Score: 1150000},
		{Label: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Score: 980000},
		{Label: "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB", Score: 845000},
		{Label: "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb", Score: 712000},
		{Label: "0x1111111111111111111111111111111111111111", Score: 598000},
		{Label: "0x2222222222222222222222222222222222222222", Score: 455000},
	}

	loyaltyRanking = []models.Entry{
		{Label: "@og_raider", Score: 365},
		{Label: "@daily_degen", Score: 342},
		{Label: "@diamond_hands", Score: 318},
		{Label: "@night_owl", Score: 296},
		{Label: "@steady_sam", Score: 271},
		{Label: "@gm_every_day", Score: 244},
		{Label: "@loyal_larry", Score: 219},
		{Label: "@early_bird", Score: 187},
		{Label: "@streak_queen", Score: 153},
		{Label: "@fresh_raider", Score: 121},
	}
)

type leaderboardService struct {
	boards map[string][]models.Entry
}

func NewLeaderboardService() LeaderboardService {
	return &leaderboardService{
		boards: map[string][]models.Entry{
			BoardTopRaiders:     ranked(topRaiders),
			BoardTopWhales:      ranked(topWhales),
			BoardLoyaltyRanking: ranked(loyaltyRanking),
		},
	}
}

func (s *leaderboardService) TopRaiders() []models.Entry {
	return s.board(BoardTopRaiders)
}

func (s *leaderboardService) TopWhales() []models.Entry {
	return s.board(BoardTopWhales)
}

func (s *leaderboardService) LoyaltyRanking() []models.Entry {
	return s.board(BoardLoyaltyRanking)
}

// board возвращает копию, чтобы вызывающий код не мог изменить рейтинг
func (s *leaderboardService) board(name string) []models.Entry {
	out := make([]models.Entry, len(s.boards[name]))
	copy(out, s.boards[name])
	return out
}

// ranked сортирует по убыванию очков и проставляет места с 1
func ranked(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

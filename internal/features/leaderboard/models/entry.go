package models

// Entry - строка рейтинга
type Entry struct {
	Rank  int    `json:"rank" example:"1"`
	Label string `json:"label" example:"@raid_master"`
	Score int64  `json:"score" example:"15420"`
}

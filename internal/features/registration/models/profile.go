package models

import "time"

// UserProfile представляет зарегистрированного участника
// @Description Регистрация: аккаунт Twitter, Telegram и кошелек
type UserProfile struct {
	ID                 int64     `json:"id" example:"1"`
	WalletAddress      string    `json:"walletAddress" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
	TwitterID          string    `json:"twitterId" example:"1234567890"`
	TwitterUsername    *string   `json:"twitterUsername" example:"raid_master"`
	TwitterDisplayName *string   `json:"twitterDisplayName" example:"Raid Master"`
	TelegramUsername   string    `json:"telegramUsername" example:"raidmaster"`
	CreatedAt          time.Time `json:"createdAt" example:"2025-03-15T14:30:00Z"`
	UpdatedAt          time.Time `json:"updatedAt" example:"2025-03-15T14:30:00Z"`
}

// RegisterRequest - тело POST /api/register
type RegisterRequest struct {
	TwitterID          string `json:"twitterId" example:"1234567890"`
	TwitterUsername    string `json:"twitterUsername,omitempty" example:"raid_master"`
	TwitterDisplayName string `json:"twitterDisplayName,omitempty" example:"Raid Master"`
	TelegramUsername   string `json:"telegramUsername" example:"raidmaster"`
	WalletAddress      string `json:"walletAddress" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
}

// RegisterInput - запрос после разбора HTTP-слоя.
// VerifiedTelegramUsername заполняется, если init_data Telegram прошла проверку.
type RegisterInput struct {
	RegisterRequest
	VerifiedTelegramUsername string
}

type RegisterResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *UserProfile `json:"user"`
}

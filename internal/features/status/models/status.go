package models

import "time"

// StatusCheck - запись журнала проверок доступности
type StatusCheck struct {
	ID         string    `json:"id" example:"6f1c2a4e-8e0b-4b8e-9f57-2d1b7c3e9a10"`
	ClientName string    `json:"clientName" example:"frontend"`
	Timestamp  time.Time `json:"timestamp" example:"2025-03-15T14:30:00Z"`
}

// StatusCheckCreate - тело POST /api/status
type StatusCheckCreate struct {
	ClientName string `json:"clientName" example:"frontend"`
}

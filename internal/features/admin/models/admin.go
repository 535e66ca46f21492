package models

import registration "raider-registry-backend/internal/features/registration/models"

// ListUsersRequest - тело POST /api/users
type ListUsersRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

type ListUsersResponse struct {
	Success bool                        `json:"success" example:"true"`
	Users   []*registration.UserProfile `json:"users"`
	Count   int                         `json:"count" example:"1"`
}

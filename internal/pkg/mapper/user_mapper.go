package mapper

import (
	dto "github.com/evandrarf/lingua-be/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/lingua-be/internal/entity"
)

// ToUserResponse - Convert DB user to response, password hash is never exposed
func ToUserResponse(u *dbEntity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Avatar:      u.Avatar,
		CreatedAt:   u.CreatedAt,
	}
}

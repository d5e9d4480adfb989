package response

import (
	"time"

	"movie-rating/internal/data/entity"
)

type AuthResponse struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session, token string) AuthResponse {
	resp := AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}

	if session != nil {
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

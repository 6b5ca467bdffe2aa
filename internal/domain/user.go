package domain

import "time"

// User registered account (users table)
type User struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Email     string    `gorm:"column:email;size:191;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	Nickname  string    `gorm:"column:nickname;size:50;not null" json:"nickname"`
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse public view of a user (password hash omitted)
type UserResponse struct {
	CreatedAt time.Time `json:"createdAt"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	ID        uint64    `json:"id"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest registration body
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

// LoginRequest login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse register/login response
type AuthResponse struct {
	User    *UserResponse `json:"user"`
	Message string        `json:"message"`
}

// MeResponse current session response
type MeResponse struct {
	User          *UserResponse `json:"user"`
	Authenticated bool          `json:"authenticated"`
}

package auth

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is a dashboard operator. Athletes never log in.
type User struct {
	gorm.Model
	Name     string  `json:"name"`
	Username string  `json:"username" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"`
	Role     string  `json:"role" gorm:"not null;default:admin;index"`
	Token    *string `json:"-" gorm:"uniqueIndex"` // super-admin login token
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
	Token    string `json:"token,omitempty" example:"sa-3f9c..."` // Alternative to username/password
}

type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Judge Desk"`
	Username string `json:"username" binding:"required,min=3,max=50" example:"desk1"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	UserResponse
	Token string `json:"token"`
}

func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}

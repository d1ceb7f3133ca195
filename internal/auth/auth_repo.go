package auth

import (
	"errors"

	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(u *User) error
	GetUserByID(id uint) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUserByToken(token string) (*User, error)
	ListUsersByRole(role string) ([]User, error)
	CountUsersByRole(role string) (int64, error)
	DeleteUser(id uint) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByToken(token string) (*User, error) {
	var u User
	if err := r.db.Where("token = ?", token).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) ListUsersByRole(role string) ([]User, error) {
	var users []User
	err := r.db.Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *authRepository) CountUsersByRole(role string) (int64, error) {
	var n int64
	err := r.db.Model(&User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *authRepository) DeleteUser(id uint) error {
	return r.db.Delete(&User{}, id).Error
}

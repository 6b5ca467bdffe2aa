package repository

import (
	"context"

	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository credential store
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindNicksByIDs(ctx context.Context, ids []uint64) (map[uint64]string, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a user. A duplicate email surfaces as gorm.ErrDuplicatedKey.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by primary key
func (r *userRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks if email is registered
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// FindNicksByIDs returns id → nickname for the given users in one query
func (r *userRepository) FindNicksByIDs(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	nicks := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return nicks, nil
	}

	var rows []struct {
		ID       uint64
		Nickname string
	}
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("id, nickname").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		nicks[row.ID] = row.Nickname
	}
	return nicks, nil
}

package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Aniket-49001/Railway-Concession/models"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Create(ctx context.Context, u *models.User) error {
	u.Email = strings.ToLower(u.Email)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.WithContext(ctx).Create(u).Error
}

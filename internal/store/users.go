package store

import (
	"errors"

	"github.com/talenthuntpro/backend/internal/models"
	"gorm.io/gorm"
)

type Users interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (s *GormUsers) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts the user and fills in the store-assigned ID. Requires
// gorm.Config{TranslateError: true} so a unique-constraint violation
// comes back as gorm.ErrDuplicatedKey.
func (s *GormUsers) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/talenthuntpro/backend/internal/models"
	"gorm.io/gorm"
)

type JobRoles interface {
	List() ([]models.JobRole, error)
	FindByID(id uuid.UUID) (*models.JobRole, error)
	Count() (int64, error)
}

type GormJobRoles struct {
	db *gorm.DB
}

func NewGormJobRoles(db *gorm.DB) *GormJobRoles {
	return &GormJobRoles{db: db}
}

func (s *GormJobRoles) List() ([]models.JobRole, error) {
	var roles []models.JobRole
	err := s.db.Order("created_at ASC").Find(&roles).Error
	return roles, err
}

func (s *GormJobRoles) FindByID(id uuid.UUID) (*models.JobRole, error) {
	var role models.JobRole
	if err := s.db.First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (s *GormJobRoles) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.JobRole{}).Count(&n).Error
	return n, err
}

package store

import (
	"github.com/google/uuid"
	"github.com/talenthuntpro/backend/internal/models"
	"gorm.io/gorm"
)

type Applications interface {
	ListByJobRole(jobRoleID uuid.UUID) ([]models.Application, error)
	Count() (int64, error)
}

type GormApplications struct {
	db *gorm.DB
}

func NewGormApplications(db *gorm.DB) *GormApplications {
	return &GormApplications{db: db}
}

func (s *GormApplications) ListByJobRole(jobRoleID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.Where("job_role_id = ?", jobRoleID).Order("applied_date ASC").Find(&apps).Error
	return apps, err
}

func (s *GormApplications) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Application{}).Count(&n).Error
	return n, err
}

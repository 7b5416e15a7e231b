package services

import (
	"errors"
	"fmt"

	"github.com/talenthuntpro/backend/internal/dto"
	"github.com/talenthuntpro/backend/internal/models"
	"github.com/talenthuntpro/backend/internal/store"
)

type ProfileService struct {
	users        store.Users
	jobRoles     store.JobRoles
	applications store.Applications
}

func NewProfileService(users store.Users, jobRoles store.JobRoles, applications store.Applications) *ProfileService {
	return &ProfileService{users: users, jobRoles: jobRoles, applications: applications}
}

func (s *ProfileService) GetProfile(email string) (*models.UserView, error) {
	user, err := s.findUser(email)
	if err != nil {
		return nil, err
	}
	view := user.ProfileView()
	return &view, nil
}

// DashboardMetrics gates on the role of the record found by the
// caller-supplied email. There is no session or token proving the
// caller owns that account; the HTTP contract is trust-on-assertion.
func (s *ProfileService) DashboardMetrics(email string) (*dto.DashboardMetrics, error) {
	user, err := s.findUser(email)
	if err != nil {
		return nil, err
	}

	totalRoles, err := s.jobRoles.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count job roles: %w", err)
	}

	if user.Role == models.RoleHR {
		totalApps, err := s.applications.Count()
		if err != nil {
			return nil, fmt.Errorf("failed to count applications: %w", err)
		}
		return &dto.DashboardMetrics{
			TotalJobRoles:     totalRoles,
			TotalApplications: &totalApps,
			UserRole:          models.RoleHR,
		}, nil
	}

	return &dto.DashboardMetrics{
		TotalJobRoles: totalRoles,
		UserRole:      models.RoleGuest,
		Message:       "Limited access - Guest user",
	}, nil
}

func (s *ProfileService) findUser(email string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/talenthuntpro/backend/internal/dto"
	"github.com/talenthuntpro/backend/internal/store"
)

type JobRoleService struct {
	jobRoles     store.JobRoles
	applications store.Applications
}

func NewJobRoleService(jobRoles store.JobRoles, applications store.Applications) *JobRoleService {
	return &JobRoleService{jobRoles: jobRoles, applications: applications}
}

// List returns every role flattened to a single JSON object each.
func (s *JobRoleService) List() ([]map[string]interface{}, error) {
	roles, err := s.jobRoles.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(roles))
	for i := range roles {
		out = append(out, roles[i].Flatten())
	}
	return out, nil
}

// Detail returns one role plus its applications. A rawID that is not a
// valid identifier is treated the same as an unknown one.
func (s *JobRoleService) Detail(rawID string) (*dto.JobRoleDetailResponse, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrJobRoleNotFound
	}

	role, err := s.jobRoles.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobRoleNotFound
		}
		return nil, fmt.Errorf("failed to look up job role: %w", err)
	}

	apps, err := s.applications.ListByJobRole(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	views := make([]dto.ApplicationView, 0, len(apps))
	for i := range apps {
		views = append(views, dto.NewApplicationView(&apps[i]))
	}

	return &dto.JobRoleDetailResponse{
		Role:         role.Flatten(),
		Applications: views,
	}, nil
}

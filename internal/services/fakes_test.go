package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/talenthuntpro/backend/internal/models"
	"github.com/talenthuntpro/backend/internal/store"
)

// -------- test fakes --------

type fakeUsers struct {
	byEmail map[string]*models.User

	findErr   error
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*models.User{}}
}

func (f *fakeUsers) FindByEmail(email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return store.ErrDuplicateEmail
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.byEmail[user.Email] = &copied
	return nil
}

type fakeJobRoles struct {
	roles   []models.JobRole
	listErr error
	findErr error
	count   int64
	cntErr  error
}

func (f *fakeJobRoles) List() ([]models.JobRole, error) {
	return f.roles, f.listErr
}

func (f *fakeJobRoles) FindByID(id uuid.UUID) (*models.JobRole, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.roles {
		if f.roles[i].ID == id {
			return &f.roles[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeJobRoles) Count() (int64, error) {
	return f.count, f.cntErr
}

type fakeApplications struct {
	apps    []models.Application
	listErr error
	count   int64
	cntErr  error
}

func (f *fakeApplications) ListByJobRole(jobRoleID uuid.UUID) ([]models.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Application
	for _, app := range f.apps {
		if app.JobRoleID == jobRoleID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeApplications) Count() (int64, error) {
	return f.count, f.cntErr
}

var errStoreDown = errors.New("connection refused")

package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthuntpro/backend/internal/models"
)

func seedUser(users *fakeUsers, role string) *models.User {
	user := &models.User{
		ID:        uuid.New(),
		Name:      "A",
		Email:     "a@x.com",
		Password:  "$2a$04$notaplaintext",
		Role:      role,
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	users.byEmail[user.Email] = user
	return user
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	seeded := seedUser(users, models.RoleGuest)
	svc := NewProfileService(users, &fakeJobRoles{}, &fakeApplications{})

	view, err := svc.GetProfile("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID.String(), view.ID)
	assert.Equal(t, "A", view.Name)
	assert.Equal(t, models.RoleGuest, view.Role)
	require.NotNil(t, view.CreatedAt)
	assert.Equal(t, seeded.CreatedAt, *view.CreatedAt)
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newFakeUsers(), &fakeJobRoles{}, &fakeApplications{})

	_, err := svc.GetProfile("nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDashboardMetrics_HR(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	seedUser(users, models.RoleHR)
	svc := NewProfileService(users, &fakeJobRoles{count: 7}, &fakeApplications{count: 42})

	metrics, err := svc.DashboardMetrics("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), metrics.TotalJobRoles)
	require.NotNil(t, metrics.TotalApplications)
	assert.Equal(t, int64(42), *metrics.TotalApplications)
	assert.Equal(t, models.RoleHR, metrics.UserRole)
	assert.Empty(t, metrics.Message)
}

func TestDashboardMetrics_Guest(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	seedUser(users, models.RoleGuest)
	svc := NewProfileService(users, &fakeJobRoles{count: 7}, &fakeApplications{count: 42})

	metrics, err := svc.DashboardMetrics("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), metrics.TotalJobRoles)
	assert.Nil(t, metrics.TotalApplications)
	assert.Equal(t, models.RoleGuest, metrics.UserRole)
	assert.Equal(t, "Limited access - Guest user", metrics.Message)
}

func TestDashboardMetrics_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newFakeUsers(), &fakeJobRoles{}, &fakeApplications{})

	_, err := svc.DashboardMetrics("nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDashboardMetrics_StoreFailure(t *testing.T) {
	t.Parallel()

	users := newFakeUsers()
	seedUser(users, models.RoleHR)
	svc := NewProfileService(users, &fakeJobRoles{cntErr: errStoreDown}, &fakeApplications{})

	_, err := svc.DashboardMetrics("a@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

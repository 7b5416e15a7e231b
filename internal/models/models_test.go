package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestUserViews(t *testing.T) {
	t.Parallel()

	user := User{
		ID:        uuid.New(),
		Name:      "A",
		Email:     "a@x.com",
		Password:  "$2a$10$hash",
		Role:      RoleHR,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	public := user.PublicView()
	assert.Equal(t, user.ID.String(), public.ID)
	assert.Equal(t, "a@x.com", public.Email)
	assert.Nil(t, public.CreatedAt)

	profile := user.ProfileView()
	require.NotNil(t, profile.CreatedAt)
	assert.Equal(t, user.CreatedAt, *profile.CreatedAt)
}

func TestValidRole(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidRole(RoleHR))
	assert.True(t, ValidRole(RoleGuest))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole("HR"))
}

func TestJobRoleFlatten(t *testing.T) {
	t.Parallel()

	role := JobRole{
		ID:         uuid.New(),
		Title:      "Backend Engineer",
		Department: "Engineering",
		Location:   "Remote",
		Details:    datatypes.JSON(`{"seniority":"senior","title":"loses to the column"}`),
	}

	flat := role.Flatten()
	assert.Equal(t, role.ID.String(), flat["id"])
	assert.Equal(t, "Backend Engineer", flat["title"])
	assert.Equal(t, "Engineering", flat["department"])
	assert.Equal(t, "Remote", flat["location"])
	assert.Equal(t, "senior", flat["seniority"])
}

func TestJobRoleFlatten_MalformedDetails(t *testing.T) {
	t.Parallel()

	role := JobRole{ID: uuid.New(), Title: "Designer", Details: datatypes.JSON(`{broken`)}

	flat := role.Flatten()
	assert.Equal(t, role.ID.String(), flat["id"])
	assert.Equal(t, "Designer", flat["title"])
	assert.NotContains(t, flat, "department")
}

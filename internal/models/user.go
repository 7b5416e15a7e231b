package models

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user can hold. Anything else is rejected at registration.
const (
	RoleHR    = "hr"
	RoleGuest = "guest"
)

func ValidRole(role string) bool {
	return role == RoleHR || role == RoleGuest
}

// User is an identity record. The password column only ever holds the
// bcrypt hash, never the plaintext.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;default:'guest'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// UserView is the subset of a User safe to return to clients.
type UserView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func (u *User) PublicView() UserView {
	return UserView{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// ProfileView is PublicView plus the creation timestamp.
func (u *User) ProfileView() UserView {
	view := u.PublicView()
	created := u.CreatedAt
	view.CreatedAt = &created
	return view
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Application links a candidate to a job role. Read-only from the
// API's perspective.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobRoleID   uuid.UUID `gorm:"type:uuid;not null;index" json:"job_role_id"`
	CandidateID string    `gorm:"not null;size:255" json:"candidate_id"`
	Status      string    `gorm:"size:20;default:'pending'" json:"status"`
	AppliedDate time.Time `json:"applied_date"`
}

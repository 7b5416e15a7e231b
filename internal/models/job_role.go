package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JobRole is a descriptive posting record. Fixed columns cover the
// attributes every posting has; Details carries the rest as a free-form
// JSON object (salary bands, perks, requirement lists, ...). Read-only
// from the API's perspective.
type JobRole struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title      string         `gorm:"not null;size:255" json:"title"`
	Department string         `gorm:"size:255" json:"department"`
	Location   string         `gorm:"size:255" json:"location"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"-"`
}

// Flatten renders the role as a single JSON object with the Details
// keys merged next to the fixed fields, id as a string. Fixed fields
// win on key collision.
func (r *JobRole) Flatten() map[string]interface{} {
	out := map[string]interface{}{}
	if len(r.Details) > 0 {
		// Ignore malformed stored JSON; the fixed fields still render.
		_ = json.Unmarshal(r.Details, &out)
	}
	out["id"] = r.ID.String()
	out["title"] = r.Title
	if r.Department != "" {
		out["department"] = r.Department
	}
	if r.Location != "" {
		out["location"] = r.Location
	}
	return out
}

package dto

import (
	"time"

	"github.com/talenthuntpro/backend/internal/models"
)

type ApplicationView struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Status      string    `json:"status"`
	AppliedDate time.Time `json:"applied_date"`
}

func NewApplicationView(app *models.Application) ApplicationView {
	return ApplicationView{
		ID:          app.ID.String(),
		CandidateID: app.CandidateID,
		Status:      app.Status,
		AppliedDate: app.AppliedDate,
	}
}

type JobRoleDetailResponse struct {
	Role         map[string]interface{} `json:"role"`
	Applications []ApplicationView      `json:"applications"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

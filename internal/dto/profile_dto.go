package dto

import "github.com/talenthuntpro/backend/internal/models"

// ProfileRequest doubles for the dashboard metrics endpoint; both look
// the caller up by email.
type ProfileRequest struct {
	Email string `json:"email"`
}

type ProfileResponse struct {
	User models.UserView `json:"user"`
}

// DashboardMetrics is role-shaped: hr sees both totals, guest sees the
// job-role total plus a limited-access notice.
type DashboardMetrics struct {
	TotalJobRoles     int64  `json:"total_job_roles"`
	TotalApplications *int64 `json:"total_applications,omitempty"`
	UserRole          string `json:"user_role"`
	Message           string `json:"message,omitempty"`
}

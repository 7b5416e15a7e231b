// Seeds sample job roles and applications so the read-only endpoints
// have data to serve on a fresh database.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"github.com/talenthuntpro/backend/internal/config"
	"github.com/talenthuntpro/backend/internal/database"
	"github.com/talenthuntpro/backend/internal/logging"
	"github.com/talenthuntpro/backend/internal/models"
)

var jobRoles = []models.JobRole{
	{
		Title:      "Backend Engineer",
		Department: "Engineering",
		Location:   "Remote",
		Details:    datatypes.JSON(`{"seniority":"senior","salary_range":"120k-160k","skills":["Go","PostgreSQL","Docker"]}`),
	},
	{
		Title:      "Product Designer",
		Department: "Design",
		Location:   "Berlin",
		Details:    datatypes.JSON(`{"seniority":"mid","salary_range":"70k-95k","skills":["Figma","Prototyping"]}`),
	},
	{
		Title:      "HR Coordinator",
		Department: "People",
		Location:   "London",
		Details:    datatypes.JSON(`{"seniority":"junior","contract":"full-time"}`),
	},
}

func main() {
	logging.Setup()
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var existing int64
	if err := db.Model(&models.JobRole{}).Count(&existing).Error; err != nil {
		slog.Error("count failed", "error", err)
		os.Exit(1)
	}
	if existing > 0 {
		slog.Info("job roles already present, skipping seed", "count", existing)
		return
	}

	if err := db.Create(&jobRoles).Error; err != nil {
		slog.Error("job role seed failed", "error", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	applications := []models.Application{
		{JobRoleID: jobRoles[0].ID, CandidateID: "cand-1001", Status: models.StatusPending, AppliedDate: now.AddDate(0, 0, -7)},
		{JobRoleID: jobRoles[0].ID, CandidateID: "cand-1002", Status: models.StatusAccepted, AppliedDate: now.AddDate(0, 0, -3)},
		{JobRoleID: jobRoles[1].ID, CandidateID: "cand-1003", Status: models.StatusRejected, AppliedDate: now.AddDate(0, 0, -1)},
	}
	if err := db.Create(&applications).Error; err != nil {
		slog.Error("application seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete", "job_roles", len(jobRoles), "applications", len(applications))
}

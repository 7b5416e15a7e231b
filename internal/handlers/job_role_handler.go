package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/talenthuntpro/backend/internal/dto"
	"github.com/talenthuntpro/backend/internal/services"
)

type JobRoleHandler struct {
	jobRoleService *services.JobRoleService
}

func NewJobRoleHandler(jobRoleService *services.JobRoleService) *JobRoleHandler {
	return &JobRoleHandler{jobRoleService: jobRoleService}
}

func (h *JobRoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.jobRoleService.List()
	if err != nil {
		slog.Error("job role listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
	return c.JSON(roles)
}

func (h *JobRoleHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.jobRoleService.Detail(c.Params("role_id"))
	if err != nil {
		if errors.Is(err, services.ErrJobRoleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "Job role not found",
			})
		}
		slog.Error("job role detail failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
	return c.JSON(detail)
}

package handler

import (
	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobListUsecase
}

func NewJobsHandler(uc usecase.JobListUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/jobs", h.List)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.JobListingResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.JobListingResponse{Title: j.Title, RequiredSkills: j.RequiredSkills})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

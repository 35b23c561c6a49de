package handler

import (
	"errors"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GapHandler struct {
	uc usecase.GapUsecase
}

func NewGapHandler(uc usecase.GapUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/gap")
	grp.Post("/analyze", h.Analyze)
}

func (h *GapHandler) Analyze(c fiber.Ctx) error {
	var req dto.GapAnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	out, err := h.uc.AnalyzeGap(c.Context(), req.UserSkills, req.JobSkills)
	if err != nil {
		return mapGapUsecaseError(err)
	}

	res := out.Result
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GapAnalyzeResponse{
		MatchingSkills:  res.Matching,
		MissingSkills:   res.Missing,
		ExtraSkills:     res.Extra,
		Coverage:        res.Coverage,
		CoveragePercent: res.CoveragePercent,
		GapPriority:     res.GapPriority,
		SkillImportance: res.SkillImportance,
		MatchingCount:   res.MatchingCount,
		MissingCount:    res.MissingCount,
		TotalRequired:   res.TotalRequired,
		Message:         out.Message,
	})
}

func mapGapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

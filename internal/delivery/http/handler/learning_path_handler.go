package handler

import (
	"errors"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/domain/path"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LearningPathHandler struct {
	uc usecase.LearningPathUsecase
}

func NewLearningPathHandler(uc usecase.LearningPathUsecase) *LearningPathHandler {
	return &LearningPathHandler{uc: uc}
}

func (h *LearningPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/learning-path")
	grp.Post("/", h.Build)
	grp.Post("/sequence", h.Sequence)
	grp.Post("/roadmap", h.Roadmap)
}

func (h *LearningPathHandler) Build(c fiber.Ctx) error {
	var req dto.LearningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	out, err := h.uc.BuildPath(c.Context(), usecase.PathParams{
		UserSkills:     req.UserSkills,
		JobSkills:      req.JobSkills,
		MaxPhases:      req.MaxPhases,
		SkillsPerPhase: req.SkillsPerPhase,
	})
	if err != nil {
		return mapLearningPathUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toLearningPathResponse(out))
}

func (h *LearningPathHandler) Sequence(c fiber.Ctx) error {
	var req dto.SequenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	seq, err := h.uc.SuggestSequence(c.Context(), req.Skills)
	if err != nil {
		return mapLearningPathUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SequenceResponse{Sequence: seq})
}

func (h *LearningPathHandler) Roadmap(c fiber.Ctx) error {
	var req dto.LearningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	out, err := h.uc.GenerateRoadmap(c.Context(), usecase.PathParams{
		UserSkills:     req.UserSkills,
		JobSkills:      req.JobSkills,
		MaxPhases:      req.MaxPhases,
		SkillsPerPhase: req.SkillsPerPhase,
	})
	if err != nil {
		return mapLearningPathUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toRoadmapResponse(out))
}

func toLearningPathResponse(p path.Path) dto.LearningPathResponse {
	phases := make([]dto.PhaseResponse, 0, len(p.Phases))
	for _, ph := range p.Phases {
		skills := make([]dto.PhaseSkill, 0, len(ph.Skills))
		for _, s := range ph.Skills {
			skills = append(skills, dto.PhaseSkill{
				Skill:       s.Skill,
				Importance:  s.BaseImportance,
				ModelScore:  s.ModelScore,
				FinalScore:  s.FinalScore,
				Explanation: s.Explanation,
			})
		}
		phases = append(phases, dto.PhaseResponse{
			Phase:         ph.Number,
			Title:         ph.Title,
			Skills:        skills,
			DurationWeeks: ph.DurationWeeks,
			Difficulty:    ph.Difficulty,
		})
	}
	return dto.LearningPathResponse{
		Phases:        phases,
		TotalWeeks:    p.TotalWeeks,
		Summary:       p.Summary,
		ModelCoverage: p.ModelCoverage,
	}
}

func toRoadmapResponse(r path.Roadmap) dto.RoadmapResponse {
	phases := make([]dto.RoadmapPhaseResponse, 0, len(r.Phases))
	for _, ph := range r.Phases {
		phases = append(phases, dto.RoadmapPhaseResponse{
			Skills:           ph.Skills,
			Weeks:            ph.Weeks,
			SkillWeeks:       ph.SkillWeeks,
			PrerequisitesMet: ph.PrerequisitesMet,
			Explanations:     ph.Explanations,
		})
	}
	return dto.RoadmapResponse{
		Phases:        phases,
		TotalWeeks:    r.TotalWeeks,
		TotalSkills:   r.TotalSkills,
		Prerequisites: r.Prerequisites,
	}
}

func mapLearningPathUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job skills are required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

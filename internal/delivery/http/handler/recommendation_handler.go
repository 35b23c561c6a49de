package handler

import (
	"errors"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultTopN = 10

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	topN := req.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	out, err := h.uc.Recommend(c.Context(), req.UserSkills, topN)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	items := make([]dto.RecommendationItem, 0, len(out.Recommendations))
	for _, cand := range out.Recommendations {
		items = append(items, dto.RecommendationItem{
			Skill:                cand.Skill,
			Score:                cand.Score,
			Sources:              cand.Sources,
			TopSource:            cand.TopSource,
			Confidence:           cand.Confidence,
			Lift:                 cand.Lift,
			BasedOn:              cand.BasedOn,
			AntecedentMatchRatio: cand.AntecedentMatchRatio,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationResponse{
		Recommendations: items,
		RulesLoaded:     out.RulesLoaded,
		Message:         out.Message,
	})
}

func mapRecommendationUsecaseError(err error) error {
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

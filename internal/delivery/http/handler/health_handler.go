package handler

import (
	"skill-path/internal/domain/rules"
	"skill-path/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	ensemble *rules.Ensemble
}

func NewHealthHandler(ensemble *rules.Ensemble) *HealthHandler {
	return &HealthHandler{ensemble: ensemble}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	stores := map[string]int{}
	total := 0
	if h.ensemble != nil {
		for _, s := range h.ensemble.Stores() {
			stores[s.Name] = len(s.Rules)
			total += len(s.Rules)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":      "healthy",
		"rules_total": total,
		"stores":      stores,
	})
}

package routes

import (
	"skill-path/internal/delivery/http/handler"
	"skill-path/internal/domain/rules"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Usecases struct {
	Gap            usecase.GapUsecase
	Recommendation usecase.RecommendationUsecase
	LearningPath   usecase.LearningPathUsecase
	Quality        usecase.QualityUsecase
	Jobs           usecase.JobListUsecase
}

type Registry struct {
	health         *handler.HealthHandler
	gap            *handler.GapHandler
	recommendation *handler.RecommendationHandler
	learningPath   *handler.LearningPathHandler
	quality        *handler.QualityHandler
	jobs           *handler.JobsHandler
}

func NewRegistry(uc Usecases, ensemble *rules.Ensemble) *Registry {
	return &Registry{
		health:         handler.NewHealthHandler(ensemble),
		gap:            handler.NewGapHandler(uc.Gap),
		recommendation: handler.NewRecommendationHandler(uc.Recommendation),
		learningPath:   handler.NewLearningPathHandler(uc.LearningPath),
		quality:        handler.NewQualityHandler(uc.Quality),
		jobs:           handler.NewJobsHandler(uc.Jobs),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.gap.RegisterRoutes(v1)
	r.recommendation.RegisterRoutes(v1)
	r.learningPath.RegisterRoutes(v1)
	r.quality.RegisterRoutes(v1)
	r.jobs.RegisterRoutes(v1)
}

package app

import (
	"fmt"
	"log"
	"strings"

	"skill-path/internal/config"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(routes.Usecases{
		Gap:            c.GapUC,
		Recommendation: c.RecommendationUC,
		LearningPath:   c.LearningPathUC,
		Quality:        c.QualityUC,
		Jobs:           c.JobsUC,
	}, c.Ensemble)
	registry.Register(f)

	return &App{Fiber: f, Container: c}, nil
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	app, err := New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, app.Container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

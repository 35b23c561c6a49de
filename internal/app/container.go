package app

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"skill-path/internal/config"
	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/path"
	"skill-path/internal/domain/rules"
	"skill-path/internal/infrastructure/cache"
	"skill-path/internal/metrics"
	"skill-path/internal/repository"
	"skill-path/internal/usecase"
)

// Container holds everything wired at startup. All model inputs are
// flat files read once here; request handling never touches the disk.
type Container struct {
	Config   config.Config
	Scoring  config.ScoringConfig
	Ensemble *rules.Ensemble
	Cache    *cache.Redis

	GapUC            *usecase.Gap
	RecommendationUC *usecase.Recommendation
	LearningPathUC   *usecase.LearningPath
	QualityUC        *usecase.Quality
	JobsUC           *usecase.JobList
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	scoring, err := config.LoadScoringConfig(cfg.Data.ScoringPath)
	if err != nil {
		logger.Printf("scoring config %s unreadable, using defaults: %v", cfg.Data.ScoringPath, err)
		scoring = config.DefaultScoringConfig()
	}

	ruleRepo := repository.NewCSVRuleRepository(logger)
	ensemble, err := ruleRepo.LoadEnsemble(cfg.Data.RulesDir)
	if err != nil {
		return nil, err
	}

	taxonomyRepo := repository.NewCSVTaxonomyRepository(logger)
	categories, err := taxonomyRepo.LoadSkillCategories(cfg.Data.TaxonomyPath)
	if err != nil {
		return nil, err
	}

	jobRepo := repository.NewCSVJobRepository(logger)
	jobs, err := jobRepo.LoadJobs(cfg.Data.JobsPath)
	if err != nil {
		return nil, err
	}

	metrics.Init()
	for _, s := range ensemble.Stores() {
		metrics.SetRulesLoaded(s.Name, len(s.Rules))
	}
	logger.Printf("loaded %d rules from %s, %d job listings, %d skill categories",
		ensemble.TotalRules(), filepath.Clean(cfg.Data.RulesDir), len(jobs), len(categories))

	redis := cache.NewRedis(logger)

	analyzer := gap.NewAnalyzer(scoring.GapWeights, categories)
	builder := path.NewBuilder(analyzer, ensemble, path.Options{
		MaxPhases:     scoring.MaxPhases,
		WeeksPerSkill: scoring.WeeksPerSkill,
		ScoreWeights:  scoring.ScoreWeights,
	})

	c := &Container{
		Config:   cfg,
		Scoring:  scoring,
		Ensemble: ensemble,
		Cache:    redis,

		GapUC:            usecase.NewGapUsecase(analyzer, ensemble),
		RecommendationUC: usecase.NewRecommendationUsecase(ensemble, redis, logger),
		LearningPathUC:   usecase.NewLearningPathUsecase(builder, ensemble, redis, logger),
		QualityUC:        usecase.NewQualityUsecase(ensemble),
		JobsUC:           usecase.NewJobListUsecase(jobs),
	}

	c.logProductionGates(logger)
	return c, nil
}

func (c *Container) logProductionGates(logger *log.Logger) {
	gates, err := c.QualityUC.ProductionGates(context.Background())
	if err != nil {
		return
	}
	for _, g := range gates {
		if g.Ready {
			logger.Printf("rule store %q passes production checks", g.Store)
			continue
		}
		logger.Printf("rule store %q not production ready: %s", g.Store, strings.Join(g.Warnings, "; "))
	}
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}

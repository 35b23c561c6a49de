package usecase

import (
	"context"
	"log"
	"time"

	"skill-path/internal/domain/path"
	"skill-path/internal/domain/rules"
	"skill-path/internal/metrics"
)

// PathParams shape one learning-path build. SkillsPerPhase caps roadmap
// phases only; the rank-sliced path derives its chunk size from
// MaxPhases.
type PathParams struct {
	UserSkills     []string
	JobSkills      []string
	MaxPhases      int
	SkillsPerPhase int
}

type LearningPathUsecase interface {
	BuildPath(ctx context.Context, params PathParams) (path.Path, error)
	SuggestSequence(ctx context.Context, skills []string) ([]string, error)
	GenerateRoadmap(ctx context.Context, params PathParams) (path.Roadmap, error)
}

type LearningPath struct {
	builder  *path.Builder
	ensemble *rules.Ensemble
	cache    ResultCache
	logger   *log.Logger
}

func NewLearningPathUsecase(builder *path.Builder, ensemble *rules.Ensemble, cache ResultCache, logger *log.Logger) *LearningPath {
	if logger == nil {
		logger = log.Default()
	}
	return &LearningPath{builder: builder, ensemble: ensemble, cache: cache, logger: logger}
}

func (u *LearningPath) BuildPath(ctx context.Context, params PathParams) (path.Path, error) {
	if len(params.JobSkills) == 0 {
		metrics.RecordRequest("path_build", "invalid")
		return path.Path{}, ErrInvalidInput
	}
	metrics.RecordRequest("path_build", "ok")

	key := PathCacheKey(params.UserSkills, params.JobSkills, params.MaxPhases)
	if u.cache != nil {
		var cached path.Path
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		metrics.RecordCacheLookup(hit && err == nil)
		if err == nil && hit {
			return cached, nil
		}
	}

	start := time.Now()
	built := u.builder.BuildWithMaxPhases(params.UserSkills, params.JobSkills, params.MaxPhases)
	metrics.ObservePathBuild(time.Since(start))

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, built, 0); err != nil {
			u.logger.Printf("[Path] cache write failed: %v", err)
		}
	}
	return built, nil
}

func (u *LearningPath) SuggestSequence(ctx context.Context, skills []string) ([]string, error) {
	_ = ctx
	if len(skills) == 0 {
		return []string{}, nil
	}
	return path.SuggestSequence(skills, u.allRules()), nil
}

func (u *LearningPath) GenerateRoadmap(ctx context.Context, params PathParams) (path.Roadmap, error) {
	_ = ctx
	if len(params.JobSkills) == 0 {
		return path.Roadmap{}, ErrInvalidInput
	}
	pool := u.allRules()
	roadmap := path.GenerateRoadmap(params.JobSkills, params.UserSkills, pool, params.SkillsPerPhase)
	return path.ExplainRoadmap(roadmap, params.UserSkills, pool), nil
}

func (u *LearningPath) allRules() []rules.Rule {
	var pool []rules.Rule
	for _, s := range u.ensemble.Stores() {
		pool = append(pool, s.Rules...)
	}
	return pool
}

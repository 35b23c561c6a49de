package usecase

import (
	"context"
	"log"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
	"skill-path/internal/metrics"
)

const maxRecommendTopN = 50

// RecommendationResult carries the merged ensemble recommendations. When
// no recommendation can be produced (no skills, no rules) Message
// explains why and Recommendations is empty; the caller renders that as
// an informational state.
type RecommendationResult struct {
	Recommendations []rules.Candidate
	RulesLoaded     int
	Message         string
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userSkills []string, topN int) (RecommendationResult, error)
}

type Recommendation struct {
	ensemble *rules.Ensemble
	cache    ResultCache
	logger   *log.Logger
}

func NewRecommendationUsecase(ensemble *rules.Ensemble, cache ResultCache, logger *log.Logger) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{ensemble: ensemble, cache: cache, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, userSkills []string, topN int) (RecommendationResult, error) {
	if topN <= 0 {
		metrics.RecordRequest("recommend", "invalid")
		return RecommendationResult{}, ErrInvalidInput
	}
	metrics.RecordRequest("recommend", "ok")
	if topN > maxRecommendTopN {
		topN = maxRecommendTopN
	}

	out := RecommendationResult{RulesLoaded: u.ensemble.TotalRules()}

	user := skillset.NewSet(userSkills...)
	if len(user) == 0 {
		out.Message = "No skills provided; cannot generate recommendations."
		return out, nil
	}
	if out.RulesLoaded == 0 {
		out.Message = "No association rules loaded; recommendations unavailable."
		return out, nil
	}

	key := RecommendCacheKey(userSkills, topN)
	if u.cache != nil {
		var cached RecommendationResult
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		metrics.RecordCacheLookup(hit && err == nil)
		if err == nil && hit {
			return cached, nil
		}
	}

	out.Recommendations = u.ensemble.Recommend(user, topN)
	if len(out.Recommendations) == 0 {
		out.Message = "No rules matched these skills; try a broader skill profile."
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
			u.logger.Printf("[Recommend] cache write failed: %v", err)
		}
	}
	return out, nil
}

package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"skill-path/internal/domain/skillset"
)

// ResultCache is the seam between usecases and the redis cache; a nil
// implementation simply bypasses.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type recommendCacheKeyInput struct {
	UserSkills []string `json:"user_skills"`
	TopN       int      `json:"top_n"`
}

type pathCacheKeyInput struct {
	UserSkills []string `json:"user_skills"`
	JobSkills  []string `json:"job_skills"`
	MaxPhases  int      `json:"max_phases"`
}

// RecommendCacheKey derives a deterministic key from the normalized
// request so equivalent skill spellings share one cache entry.
func RecommendCacheKey(userSkills []string, topN int) string {
	in := recommendCacheKeyInput{
		UserSkills: skillset.NormalizeAll(userSkills),
		TopN:       topN,
	}
	return "recommend:" + hashKey(in)
}

func PathCacheKey(userSkills, jobSkills []string, maxPhases int) string {
	in := pathCacheKeyInput{
		UserSkills: skillset.NormalizeAll(userSkills),
		JobSkills:  skillset.NormalizeAll(jobSkills),
		MaxPhases:  maxPhases,
	}
	return "path:" + hashKey(in)
}

func hashKey(in any) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// fakeCache is an in-memory ResultCache for tests.
type fakeCache struct {
	entries map[string][]byte
	gets    int
	sets    int
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.gets++
	if c.failGet {
		return false, errors.New("cache down")
	}
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func testEnsemble() *rules.Ensemble {
	return rules.NewEnsemble(rules.NewStore("skills", []rules.Rule{
		{
			Antecedents: skillset.NewSet("python"),
			Consequents: skillset.NewSet("machine learning"),
			Support:     0.05,
			Confidence:  0.8,
			Lift:        1.5,
		},
	}))
}

func TestRecommendInvalidTopN(t *testing.T) {
	uc := NewRecommendationUsecase(testEnsemble(), nil, nil)

	_, err := uc.Recommend(context.Background(), []string{"python"}, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRecommendEmptySkillsMessage(t *testing.T) {
	uc := NewRecommendationUsecase(testEnsemble(), nil, nil)

	out, err := uc.Recommend(context.Background(), nil, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(out.Recommendations) != 0 {
		t.Fatalf("recommendations = %v, want none", out.Recommendations)
	}
	if out.Message != "No skills provided; cannot generate recommendations." {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestRecommendNoRulesLoadedMessage(t *testing.T) {
	uc := NewRecommendationUsecase(rules.NewEnsemble(), nil, nil)

	out, err := uc.Recommend(context.Background(), []string{"python"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if out.RulesLoaded != 0 {
		t.Fatalf("rules loaded = %d", out.RulesLoaded)
	}
	if out.Message != "No association rules loaded; recommendations unavailable." {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestRecommendProducesCandidates(t *testing.T) {
	uc := NewRecommendationUsecase(testEnsemble(), nil, nil)

	out, err := uc.Recommend(context.Background(), []string{"Python"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if out.RulesLoaded != 1 {
		t.Fatalf("rules loaded = %d, want 1", out.RulesLoaded)
	}
	if len(out.Recommendations) != 1 || out.Recommendations[0].Skill != "machine learning" {
		t.Fatalf("recommendations = %+v", out.Recommendations)
	}
	if out.Message != "" {
		t.Fatalf("unexpected message %q", out.Message)
	}
}

func TestRecommendUsesCache(t *testing.T) {
	cache := newFakeCache()
	uc := NewRecommendationUsecase(testEnsemble(), cache, nil)

	first, err := uc.Recommend(context.Background(), []string{"python"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := uc.Recommend(context.Background(), []string{"  PYTHON "}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets after hit = %d, want still 1", cache.sets)
	}
	if len(second.Recommendations) != len(first.Recommendations) {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestRecommendSurvivesCacheFailure(t *testing.T) {
	cache := newFakeCache()
	cache.failGet = true
	uc := NewRecommendationUsecase(testEnsemble(), cache, nil)

	out, err := uc.Recommend(context.Background(), []string{"python"}, 10)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(out.Recommendations) != 1 {
		t.Fatalf("recommendations = %+v", out.Recommendations)
	}
}

func TestRecommendCacheKeyNormalizes(t *testing.T) {
	a := RecommendCacheKey([]string{"Python", "SQL"}, 10)
	b := RecommendCacheKey([]string{" sql ", "python"}, 10)
	if a != b {
		t.Fatalf("keys differ for equivalent inputs: %q vs %q", a, b)
	}
	c := RecommendCacheKey([]string{"python"}, 10)
	if a == c {
		t.Fatalf("keys collide for different inputs")
	}
}

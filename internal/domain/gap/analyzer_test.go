package gap

import (
	"math"
	"reflect"
	"testing"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultWeights(), map[string]string{
		"python": "programming",
		"sql":    "data",
		"docker": "devops",
	})
}

func rule(antecedents, consequents []string, confidence float64) rules.Rule {
	return rules.Rule{
		Antecedents: skillset.NewSet(antecedents...),
		Consequents: skillset.NewSet(consequents...),
		Support:     0.05,
		Confidence:  confidence,
		Lift:        1.2,
	}
}

func TestAnalyzeGapDisjoint(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap([]string{"excel"}, []string{"python", "sql"}, nil)

	if res.Coverage != 0 {
		t.Fatalf("coverage = %v, want 0", res.Coverage)
	}
	if !reflect.DeepEqual(res.Missing, []string{"python", "sql"}) {
		t.Fatalf("missing = %v", res.Missing)
	}
	if !reflect.DeepEqual(res.Extra, []string{"excel"}) {
		t.Fatalf("extra = %v", res.Extra)
	}
	if res.MatchingCount != 0 || res.MissingCount != 2 || res.TotalRequired != 2 {
		t.Fatalf("counts = %d/%d/%d", res.MatchingCount, res.MissingCount, res.TotalRequired)
	}
}

func TestAnalyzeGapIdentical(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap([]string{"python", "sql"}, []string{"python", "sql"}, nil)

	if res.Coverage != 1 {
		t.Fatalf("coverage = %v, want 1", res.Coverage)
	}
	if res.CoveragePercent != 100 {
		t.Fatalf("coverage percent = %v, want 100", res.CoveragePercent)
	}
	if len(res.Missing) != 0 || len(res.Extra) != 0 {
		t.Fatalf("missing=%v extra=%v, want empty", res.Missing, res.Extra)
	}
	if len(res.GapPriority) != 0 {
		t.Fatalf("gap priority = %v, want empty", res.GapPriority)
	}
}

func TestAnalyzeGapCaseInsensitive(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap([]string{"Python", "  SQL "}, []string{"python", "sql"}, nil)

	if res.Coverage != 1 {
		t.Fatalf("coverage = %v, want 1", res.Coverage)
	}
}

func TestAnalyzeGapPartialCoverage(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap(
		[]string{"python", "sql"},
		[]string{"python", "sql", "docker", "aws", "kubernetes"},
		nil,
	)

	if math.Abs(res.Coverage-0.4) > 1e-9 {
		t.Fatalf("coverage = %v, want 0.4", res.Coverage)
	}
	if res.CoveragePercent != 40 {
		t.Fatalf("coverage percent = %v, want 40", res.CoveragePercent)
	}
	if res.MissingCount != 3 {
		t.Fatalf("missing count = %d, want 3", res.MissingCount)
	}
}

func TestAnalyzeGapEmptyJobSkills(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap([]string{"python"}, nil, nil)

	if res.Coverage != 0 || res.TotalRequired != 0 {
		t.Fatalf("coverage=%v total=%d, want both zero", res.Coverage, res.TotalRequired)
	}
	if !reflect.DeepEqual(res.Extra, []string{"python"}) {
		t.Fatalf("extra = %v", res.Extra)
	}
}

func TestPrioritizeFoundationalOutranksPlain(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap(nil, []string{"sql", "excel"}, nil)

	// sql is foundational (+0.5); excel gets only the base score.
	if !reflect.DeepEqual(res.GapPriority, []string{"sql", "excel"}) {
		t.Fatalf("priority = %v", res.GapPriority)
	}
}

func TestPrioritizeUnlockBonusRequiresReliableConfidence(t *testing.T) {
	a := newTestAnalyzer()
	job := []string{"excel", "tableau", "powerbi"}

	// A reliable rule from excel unlocks both other required skills.
	reliable := []rules.Rule{rule([]string{"excel"}, []string{"tableau", "powerbi"}, 0.9)}
	res := a.AnalyzeGap(nil, job, reliable)
	if res.GapPriority[0] != "excel" {
		t.Fatalf("priority with reliable rule = %v, want excel first", res.GapPriority)
	}

	// At exactly the threshold the unlock bonus must not fire; only the
	// mean-confidence bonus separates excel then, which cannot beat a
	// foundational skill.
	atThreshold := []rules.Rule{rule([]string{"excel"}, []string{"tableau", "powerbi"}, 0.5)}
	res = a.AnalyzeGap(nil, []string{"excel", "sql"}, atThreshold)
	if res.GapPriority[0] != "sql" {
		t.Fatalf("priority at threshold = %v, want sql first", res.GapPriority)
	}
}

func TestPrioritizeTieBreaksLexically(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap(nil, []string{"zig", "elixir", "haskell"}, nil)

	if !reflect.DeepEqual(res.GapPriority, []string{"elixir", "haskell", "zig"}) {
		t.Fatalf("priority = %v", res.GapPriority)
	}
}

func TestSkillImportanceDecaysWithFloor(t *testing.T) {
	a := newTestAnalyzer()
	res := a.AnalyzeGap(nil, []string{"a", "b", "c", "d", "e"}, nil)

	first := res.GapPriority[0]
	last := res.GapPriority[len(res.GapPriority)-1]
	if res.SkillImportance[first] != 1.0 {
		t.Fatalf("top importance = %v, want 1.0", res.SkillImportance[first])
	}
	if res.SkillImportance[last] < 0.3 {
		t.Fatalf("importance below floor: %v", res.SkillImportance[last])
	}
	prev := 2.0
	for _, s := range res.GapPriority {
		v := res.SkillImportance[s]
		if v > prev {
			t.Fatalf("importance not monotonic: %v", res.SkillImportance)
		}
		prev = v
	}
}

func TestCategoryDistribution(t *testing.T) {
	a := newTestAnalyzer()
	got := a.CategoryDistribution([]string{"python", "sql", "docker", "unknown-thing"})

	want := []CategoryCount{
		{Category: "data", Count: 1},
		{Category: "devops", Count: 1},
		{Category: "other", Count: 1},
		{Category: "programming", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("distribution = %v", got)
	}
}

func TestEstimateLearningTime(t *testing.T) {
	a := newTestAnalyzer()
	est := a.EstimateLearningTime([]string{"python", "git", "mystery"})

	// 100 + 30 + 80 default
	if est.TotalHours != 210 {
		t.Fatalf("total hours = %d, want 210", est.TotalHours)
	}
	if est.TotalWeeks != 21 {
		t.Fatalf("total weeks = %d, want 21", est.TotalWeeks)
	}
	if est.SkillsCount != 3 {
		t.Fatalf("skills count = %d", est.SkillsCount)
	}
}

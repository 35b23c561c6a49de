// Package gap computes matching/missing/extra skill sets between a user
// profile and a job requirement list, plus a priority ordering of the
// missing skills. The priority formula is a hand-tuned weighted sum, kept
// as named configuration so it can be retuned or replaced with a learned
// scorer without touching call sites.
package gap

import (
	"math"
	"sort"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// Weights are the priority-scoring constants. Zero value is not useful;
// use DefaultWeights.
type Weights struct {
	Base               float64 `yaml:"base"`
	PrereqUnlock       float64 `yaml:"prereq_unlock"`
	RuleConfidence     float64 `yaml:"rule_confidence"`
	ModernBonus        float64 `yaml:"modern_bonus"`
	FoundationalBonus  float64 `yaml:"foundational_bonus"`
	ReliableConfidence float64 `yaml:"reliable_confidence"`
	ImportanceFloor    float64 `yaml:"importance_floor"`
	ImportanceDecay    float64 `yaml:"importance_decay"`
}

func DefaultWeights() Weights {
	return Weights{
		Base:               0.5,
		PrereqUnlock:       0.3,
		RuleConfidence:     0.4,
		ModernBonus:        0.2,
		FoundationalBonus:  0.5,
		ReliableConfidence: 0.5,
		ImportanceFloor:    0.3,
		ImportanceDecay:    0.7,
	}
}

// Curated allow-lists consumed by the priority formula.
var (
	modernSkills = skillset.NewSet(
		"python", "javascript", "docker", "kubernetes", "aws",
		"machine learning", "tensorflow", "react", "go", "rust",
	)
	foundationalSkills = skillset.NewSet(
		"sql", "git", "communication", "problem solving",
	)
)

// Result is the full gap analysis for one user/job pair.
type Result struct {
	Matching        []string
	Missing         []string
	Extra           []string
	Coverage        float64
	CoveragePercent float64
	GapPriority     []string
	SkillImportance map[string]float64
	MatchingCount   int
	MissingCount    int
	TotalRequired   int
}

// Analyzer is a pure scoring component; it holds only configuration and
// an optional skill-to-category lookup.
type Analyzer struct {
	weights         Weights
	skillToCategory map[string]string
}

func NewAnalyzer(weights Weights, skillToCategory map[string]string) *Analyzer {
	norm := make(map[string]string, len(skillToCategory))
	for k, v := range skillToCategory {
		nk := skillset.Normalize(k)
		nv := skillset.Normalize(v)
		if nk == "" || nv == "" {
			continue
		}
		norm[nk] = nv
	}
	return &Analyzer{weights: weights, skillToCategory: norm}
}

func (a *Analyzer) Weights() Weights {
	return a.weights
}

// Category returns the taxonomy category for a skill, or "other".
func (a *Analyzer) Category(skill string) string {
	if c, ok := a.skillToCategory[skillset.Normalize(skill)]; ok {
		return c
	}
	return "other"
}

// AnalyzeGap is a pure function over its inputs. ruleSet may be nil; the
// rule-derived priority factors then contribute nothing.
func (a *Analyzer) AnalyzeGap(userSkills, jobSkills []string, ruleSet []rules.Rule) Result {
	user := skillset.NewSet(userSkills...)
	required := skillset.NewSet(jobSkills...)

	matching := required.Intersect(user)
	missing := required.Diff(user)
	extra := user.Diff(required)

	coverage := 0.0
	if len(required) > 0 {
		coverage = float64(len(matching)) / float64(len(required))
	}

	priority := a.prioritize(missing, required, ruleSet)
	importance := a.importanceByRank(priority)

	return Result{
		Matching:        matching.Sorted(),
		Missing:         missing.Sorted(),
		Extra:           extra.Sorted(),
		Coverage:        coverage,
		CoveragePercent: math.Round(coverage*1000) / 10,
		GapPriority:     priority,
		SkillImportance: importance,
		MatchingCount:   len(matching),
		MissingCount:    len(missing),
		TotalRequired:   len(required),
	}
}

// prioritize orders missing skills by descending heuristic score. The
// factors: a prerequisite-unlock bonus for skills whose rules list other
// required skills as consequents, a mean-rule-confidence bonus, fixed
// category bonuses, and a base score every missing skill gets. Ties break
// by skill name so the ordering is stable.
func (a *Analyzer) prioritize(missing, required skillset.Set, ruleSet []rules.Rule) []string {
	if len(missing) == 0 {
		return []string{}
	}

	scores := make(map[string]float64, len(missing))
	for skill := range missing {
		score := a.weights.Base

		var confSum float64
		confCount := 0
		for _, r := range ruleSet {
			if !r.Antecedents.Has(skill) {
				continue
			}
			confSum += r.Confidence
			confCount++
			if r.Confidence > a.weights.ReliableConfidence {
				unlocks := len(r.Consequents.Intersect(required))
				score += float64(unlocks) * a.weights.PrereqUnlock
			}
		}
		if confCount > 0 {
			score += (confSum / float64(confCount)) * a.weights.RuleConfidence
		}

		if modernSkills.Has(skill) {
			score += a.weights.ModernBonus
		}
		if foundationalSkills.Has(skill) {
			score += a.weights.FoundationalBonus
		}
		scores[skill] = score
	}

	out := missing.Sorted()
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] > scores[out[j]]
	})
	return out
}

// importanceByRank maps each prioritized skill to a [floor,1] score with
// linear decay by rank position, so even the lowest-priority missing
// skill is never scored as unimportant.
func (a *Analyzer) importanceByRank(priority []string) map[string]float64 {
	out := make(map[string]float64, len(priority))
	total := len(priority)
	if total == 0 {
		return out
	}
	for i, skill := range priority {
		v := 1.0 - (float64(i)/float64(total))*a.weights.ImportanceDecay
		if v < a.weights.ImportanceFloor {
			v = a.weights.ImportanceFloor
		}
		out[skill] = v
	}
	return out
}

// CategoryDistribution counts skills by taxonomy category, descending.
type CategoryCount struct {
	Category string
	Count    int
}

func (a *Analyzer) CategoryDistribution(skills []string) []CategoryCount {
	counts := map[string]int{}
	for _, s := range skills {
		k := skillset.Normalize(s)
		if k == "" {
			continue
		}
		counts[a.Category(k)]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Per-skill learning-hour estimates. Unknown skills get the default.
var skillHours = map[string]int{
	"python":           100,
	"javascript":       80,
	"sql":              60,
	"machine learning": 200,
	"deep learning":    250,
	"tensorflow":       120,
	"pytorch":          120,
	"aws":              100,
	"docker":           50,
	"kubernetes":       80,
	"react":            80,
	"node.js":          80,
	"django":           100,
	"flask":            60,
	"git":              30,
	"agile":            40,
	"communication":    20,
}

const (
	defaultSkillHours = 80
	hoursPerWeek      = 10
)

// TimeEstimate summarizes how long closing a gap should take assuming
// ten study hours per week.
type TimeEstimate struct {
	TotalHours  int
	TotalWeeks  int
	TotalMonths float64
	ByCategory  []CategoryCount
	SkillsCount int
}

func (a *Analyzer) EstimateLearningTime(missingSkills []string) TimeEstimate {
	categoryHours := map[string]int{}
	total := 0
	count := 0
	for _, s := range missingSkills {
		k := skillset.Normalize(s)
		if k == "" {
			continue
		}
		hours, ok := skillHours[k]
		if !ok {
			hours = defaultSkillHours
		}
		total += hours
		count++
		categoryHours[a.Category(k)] += hours
	}

	byCat := make([]CategoryCount, 0, len(categoryHours))
	for c, h := range categoryHours {
		byCat = append(byCat, CategoryCount{Category: c, Count: h})
	}
	sort.Slice(byCat, func(i, j int) bool {
		if byCat[i].Count != byCat[j].Count {
			return byCat[i].Count > byCat[j].Count
		}
		return byCat[i].Category < byCat[j].Category
	})

	weeks := int(math.Round(float64(total) / hoursPerWeek))
	return TimeEstimate{
		TotalHours:  total,
		TotalWeeks:  weeks,
		TotalMonths: math.Round(float64(weeks)/4*10) / 10,
		ByCategory:  byCat,
		SkillsCount: count,
	}
}

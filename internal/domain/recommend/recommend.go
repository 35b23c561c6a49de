// Package recommend combines gap importance with ensemble rule evidence
// into the final per-skill ranking consumed by the learning path builder.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

// ScoreWeights split the final score between gap importance and model
// evidence. Defaults are 0.5/0.5; the sum is caller-chosen and not
// normalized here, a deliberate tunable.
type ScoreWeights struct {
	Importance float64 `yaml:"importance"`
	Model      float64 `yaml:"model"`
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Importance: 0.5, Model: 0.5}
}

// Recommendation is one scored missing skill. Constructed fresh per
// query, never persisted.
type Recommendation struct {
	Skill          string
	BaseImportance float64
	ModelScore     float64
	FinalScore     float64
	Sources        []string
	Confidence     float64
	Lift           float64
	Explanation    string
}

// ScoreMissingSkills ranks the missing skills by a weighted combination
// of gap importance and the strongest rule evidence. A skill with no
// firing rule keeps its importance as the final score: averaging in a
// zero signal would unfairly penalize skills the rule sets never cover.
func ScoreMissingSkills(
	missing []string,
	userSkills []string,
	importance map[string]float64,
	ensemble *rules.Ensemble,
	weights ScoreWeights,
) []Recommendation {
	user := skillset.NewSet(userSkills...)
	seen := skillset.NewSet(missing...)

	out := make([]Recommendation, 0, len(seen))
	for _, skill := range seen.Sorted() {
		base, ok := importance[skill]
		if !ok {
			base = 0.5
		}

		score := ensemble.ScoreSkill(skill, user)

		final := base
		if score.ModelScore > 0 {
			final = weights.Importance*base + weights.Model*score.ModelScore
		}

		out = append(out, Recommendation{
			Skill:          skill,
			BaseImportance: base,
			ModelScore:     score.ModelScore,
			FinalScore:     final,
			Sources:        score.Sources,
			Confidence:     score.AvgConfidence,
			Lift:           score.AvgLift,
			Explanation:    explain(skill, base, score),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// explain builds the user-facing reason string. It is part of the API
// contract and must stay deterministic for identical inputs.
func explain(skill string, base float64, score rules.SkillScore) string {
	if len(score.Sources) == 0 {
		return fmt.Sprintf(
			"Job requires this skill (importance: %.0f%%). No association rule signals available for %s; showing gap-based priority.",
			base*100, skill,
		)
	}
	return fmt.Sprintf(
		"Job requires this skill (importance: %.0f%%). Association rules show it frequently appears with your skills (confidence: %.0f%%, lift: %.1fx). Recommended by: %s.",
		base*100, score.AvgConfidence*100, score.AvgLift, strings.Join(score.Sources, ", "),
	)
}

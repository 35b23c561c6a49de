// Package path assembles phased learning plans from gap analysis and
// ensemble recommendations. Phase grouping is a rank-slicing heuristic;
// the topological sequencing in sequence.go is a separate algorithm and
// the two are deliberately not unified (phases need not respect
// prerequisite edges across phase boundaries).
package path

import (
	"fmt"

	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/recommend"
	"skill-path/internal/domain/rules"
)

var (
	phaseTitles = []string{
		"Foundation Skills",
		"Core Competencies",
		"Intermediate Skills",
		"Advanced Techniques",
		"Expert Level",
	}
	phaseDifficulties = []string{
		"Easy",
		"Easy-Medium",
		"Medium",
		"Medium-Hard",
		"Hard",
	}
)

// Options control phase shaping. Zero values fall back to defaults.
type Options struct {
	MaxPhases     int
	WeeksPerSkill float64
	ScoreWeights  recommend.ScoreWeights
}

func DefaultOptions() Options {
	return Options{
		MaxPhases:     5,
		WeeksPerSkill: 1.5,
		ScoreWeights:  recommend.DefaultScoreWeights(),
	}
}

func (o Options) normalized() Options {
	if o.MaxPhases <= 0 {
		o.MaxPhases = 5
	}
	if o.WeeksPerSkill <= 0 {
		o.WeeksPerSkill = 1.5
	}
	if o.ScoreWeights.Importance == 0 && o.ScoreWeights.Model == 0 {
		o.ScoreWeights = recommend.DefaultScoreWeights()
	}
	return o
}

// Phase is an ordered, time-boxed group of skills.
type Phase struct {
	Number        int
	Title         string
	Skills        []recommend.Recommendation
	DurationWeeks int
	Difficulty    string
}

// Path is the complete phased plan. Empty phases plus a summary message
// is a valid terminal state (nothing to learn, or a failed build); the
// caller must not treat it as an error to retry.
type Path struct {
	Phases        []Phase
	TotalWeeks    int
	Summary       string
	ModelCoverage float64
}

// Builder wires the gap analyzer and rule ensemble into path builds.
type Builder struct {
	analyzer *gap.Analyzer
	ensemble *rules.Ensemble
	opts     Options
}

func NewBuilder(analyzer *gap.Analyzer, ensemble *rules.Ensemble, opts Options) *Builder {
	return &Builder{analyzer: analyzer, ensemble: ensemble, opts: opts.normalized()}
}

// Build produces a phased learning path for one user/job pair using the
// builder's configured phase count.
func (b *Builder) Build(userSkills, targetJobSkills []string) Path {
	return b.BuildWithMaxPhases(userSkills, targetJobSkills, 0)
}

// BuildWithMaxPhases is Build with a per-call phase cap; maxPhases <= 0
// falls back to the configured default. Any internal failure is
// converted into an annotated empty path rather than propagating; one
// bad build must not take the request down.
func (b *Builder) BuildWithMaxPhases(userSkills, targetJobSkills []string, maxPhases int) (out Path) {
	defer func() {
		if r := recover(); r != nil {
			out = Path{
				Phases:  []Phase{},
				Summary: fmt.Sprintf("Error building learning path: %v", r),
			}
		}
	}()

	if maxPhases <= 0 {
		maxPhases = b.opts.MaxPhases
	}

	var pool []rules.Rule
	for _, s := range b.ensemble.Stores() {
		pool = append(pool, s.Rules...)
	}

	gapResult := b.analyzer.AnalyzeGap(userSkills, targetJobSkills, pool)
	if len(gapResult.Missing) == 0 {
		return Path{
			Phases:        []Phase{},
			Summary:       "You already have all required skills for this job.",
			ModelCoverage: 1.0,
		}
	}

	ranked := recommend.ScoreMissingSkills(
		gapResult.Missing,
		userSkills,
		gapResult.SkillImportance,
		b.ensemble,
		b.opts.ScoreWeights,
	)

	phases := b.groupIntoPhases(ranked, maxPhases)

	totalWeeks := 0
	for _, p := range phases {
		totalWeeks += p.DurationWeeks
	}

	withSignals := 0
	for _, r := range ranked {
		if len(r.Sources) > 0 {
			withSignals++
		}
	}
	coverage := 0.0
	if len(ranked) > 0 {
		coverage = float64(withSignals) / float64(len(ranked))
	}

	return Path{
		Phases:        phases,
		TotalWeeks:    totalWeeks,
		ModelCoverage: coverage,
		Summary: fmt.Sprintf(
			"Personalized learning path: %d missing skills organized into %d phases (~%d weeks). %.0f%% of skills backed by association-rule models.",
			len(ranked), len(phases), totalWeeks, coverage*100,
		),
	}
}

// groupIntoPhases slices the ranked list into contiguous chunks of
// roughly equal size, preserving rank order; the last phase absorbs the
// remainder. Difficulty labels follow the phase index, not the skills.
func (b *Builder) groupIntoPhases(ranked []recommend.Recommendation, maxPhases int) []Phase {
	if len(ranked) == 0 {
		return []Phase{}
	}

	perPhase := len(ranked) / maxPhases
	if perPhase < 1 {
		perPhase = 1
	}

	phases := make([]Phase, 0, maxPhases)
	for idx := 0; idx < maxPhases; idx++ {
		start := idx * perPhase
		if start >= len(ranked) {
			break
		}
		end := start + perPhase
		if idx == maxPhases-1 || end > len(ranked) {
			end = len(ranked)
		}

		skills := ranked[start:end]
		title := fmt.Sprintf("Phase %d", idx+1)
		if idx < len(phaseTitles) {
			title = phaseTitles[idx]
		}
		difficulty := "Hard"
		if idx < len(phaseDifficulties) {
			difficulty = phaseDifficulties[idx]
		}

		phases = append(phases, Phase{
			Number:        idx + 1,
			Title:         title,
			Skills:        skills,
			DurationWeeks: int(float64(len(skills)) * b.opts.WeeksPerSkill),
			Difficulty:    difficulty,
		})
		if end == len(ranked) {
			break
		}
	}
	return phases
}

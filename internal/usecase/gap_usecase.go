package usecase

import (
	"context"

	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/rules"
	"skill-path/internal/metrics"
)

// GapAnalysis is the gap result plus an informational message when the
// analysis has nothing to work with. An empty result with a message is a
// valid outcome, not an error.
type GapAnalysis struct {
	Result  gap.Result
	Message string
}

type GapUsecase interface {
	AnalyzeGap(ctx context.Context, userSkills, jobSkills []string) (GapAnalysis, error)
}

type Gap struct {
	analyzer *gap.Analyzer
	ensemble *rules.Ensemble
}

func NewGapUsecase(analyzer *gap.Analyzer, ensemble *rules.Ensemble) *Gap {
	return &Gap{analyzer: analyzer, ensemble: ensemble}
}

func (u *Gap) AnalyzeGap(ctx context.Context, userSkills, jobSkills []string) (GapAnalysis, error) {
	_ = ctx

	var pool []rules.Rule
	for _, s := range u.ensemble.Stores() {
		pool = append(pool, s.Rules...)
	}

	res := u.analyzer.AnalyzeGap(userSkills, jobSkills, pool)

	msg := ""
	if res.TotalRequired == 0 {
		msg = "No job skills provided; nothing to compare against."
	}
	metrics.RecordRequest("gap_analyze", "ok")
	return GapAnalysis{Result: res, Message: msg}, nil
}

package path

import (
	"strings"
	"testing"

	"skill-path/internal/domain/gap"
	"skill-path/internal/domain/rules"
	"skill-path/internal/domain/skillset"
)

func newTestBuilder(ensemble *rules.Ensemble, opts Options) *Builder {
	analyzer := gap.NewAnalyzer(gap.DefaultWeights(), nil)
	return NewBuilder(analyzer, ensemble, opts)
}

func TestBuildNoMissingSkills(t *testing.T) {
	b := newTestBuilder(rules.NewEnsemble(), DefaultOptions())

	p := b.Build([]string{"python", "sql"}, []string{"python", "sql"})
	if len(p.Phases) != 0 {
		t.Fatalf("phases = %d, want 0", len(p.Phases))
	}
	if p.ModelCoverage != 1.0 {
		t.Fatalf("model coverage = %v, want 1.0", p.ModelCoverage)
	}
	if p.Summary != "You already have all required skills for this job." {
		t.Fatalf("summary = %q", p.Summary)
	}
}

func TestBuildPhaseSlicing(t *testing.T) {
	b := newTestBuilder(rules.NewEnsemble(), Options{MaxPhases: 3, WeeksPerSkill: 1.5})

	job := []string{"a", "b", "c", "d", "e", "f", "g"}
	p := b.Build(nil, job)

	// 7 skills / 3 phases -> chunks of 2, last phase absorbs the rest.
	if len(p.Phases) != 3 {
		t.Fatalf("phases = %d, want 3", len(p.Phases))
	}
	sizes := []int{len(p.Phases[0].Skills), len(p.Phases[1].Skills), len(p.Phases[2].Skills)}
	if sizes[0] != 2 || sizes[1] != 2 || sizes[2] != 3 {
		t.Fatalf("phase sizes = %v", sizes)
	}

	total := 0
	for _, ph := range p.Phases {
		total += len(ph.Skills)
	}
	if total != len(job) {
		t.Fatalf("skills across phases = %d, want %d", total, len(job))
	}
}

func TestBuildWithMaxPhasesOverride(t *testing.T) {
	b := newTestBuilder(rules.NewEnsemble(), DefaultOptions())

	job := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	p := b.BuildWithMaxPhases(nil, job, 2)
	if len(p.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(p.Phases))
	}
	sizes := []int{len(p.Phases[0].Skills), len(p.Phases[1].Skills)}
	if sizes[0] != 5 || sizes[1] != 5 {
		t.Fatalf("phase sizes = %v", sizes)
	}

	// Non-positive override falls back to the configured default.
	p = b.BuildWithMaxPhases(nil, job, 0)
	if len(p.Phases) != 5 {
		t.Fatalf("phases with fallback = %d, want 5", len(p.Phases))
	}
}

func TestBuildPhaseMetadata(t *testing.T) {
	b := newTestBuilder(rules.NewEnsemble(), DefaultOptions())

	p := b.Build(nil, []string{"a", "b", "c", "d", "e"})
	if len(p.Phases) != 5 {
		t.Fatalf("phases = %d, want 5", len(p.Phases))
	}
	if p.Phases[0].Title != "Foundation Skills" || p.Phases[0].Difficulty != "Easy" {
		t.Fatalf("first phase = %q/%q", p.Phases[0].Title, p.Phases[0].Difficulty)
	}
	if p.Phases[4].Title != "Expert Level" || p.Phases[4].Difficulty != "Hard" {
		t.Fatalf("last phase = %q/%q", p.Phases[4].Title, p.Phases[4].Difficulty)
	}
	for i, ph := range p.Phases {
		if ph.Number != i+1 {
			t.Fatalf("phase %d numbered %d", i, ph.Number)
		}
	}
}

func TestBuildDurationTruncates(t *testing.T) {
	b := newTestBuilder(rules.NewEnsemble(), Options{MaxPhases: 1, WeeksPerSkill: 1.5})

	p := b.Build(nil, []string{"a", "b", "c"})
	// 3 skills * 1.5 weeks = 4.5, truncated to 4.
	if len(p.Phases) != 1 || p.Phases[0].DurationWeeks != 4 {
		t.Fatalf("duration = %+v, want one 4-week phase", p.Phases)
	}
	if p.TotalWeeks != 4 {
		t.Fatalf("total weeks = %d, want 4", p.TotalWeeks)
	}
}

func TestBuildModelCoverage(t *testing.T) {
	ensemble := rules.NewEnsemble(rules.NewStore("skills", []rules.Rule{
		{
			Antecedents: skillset.NewSet("python"),
			Consequents: skillset.NewSet("machine learning"),
			Support:     0.05,
			Confidence:  0.8,
			Lift:        1.5,
		},
	}))
	b := newTestBuilder(ensemble, DefaultOptions())

	p := b.Build([]string{"python"}, []string{"python", "machine learning", "cobol"})
	// Of the two missing skills only machine learning has rule backing.
	if p.ModelCoverage != 0.5 {
		t.Fatalf("model coverage = %v, want 0.5", p.ModelCoverage)
	}
	if !strings.Contains(p.Summary, "2 missing skills") {
		t.Fatalf("summary = %q", p.Summary)
	}
}

func TestBuildRanksByFinalScore(t *testing.T) {
	ensemble := rules.NewEnsemble(rules.NewStore("skills", []rules.Rule{
		{
			Antecedents: skillset.NewSet("python"),
			Consequents: skillset.NewSet("zookeeper"),
			Support:     0.05,
			Confidence:  0.95,
			Lift:        1.5,
		},
	}))
	b := newTestBuilder(ensemble, Options{MaxPhases: 1})

	p := b.Build([]string{"python"}, []string{"python", "zookeeper", "abacus"})
	skills := p.Phases[0].Skills
	if len(skills) != 2 {
		t.Fatalf("skills = %d, want 2", len(skills))
	}
	if skills[0].FinalScore < skills[1].FinalScore {
		t.Fatalf("phase skills not rank ordered: %v then %v", skills[0].FinalScore, skills[1].FinalScore)
	}
}
